package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/pkg/auth"
	"github.com/Astemirdum/bookshelf-service/pkg/metrics"
	md "github.com/Astemirdum/bookshelf-service/pkg/middleware"
	"github.com/Astemirdum/bookshelf-service/pkg/validate"
	_ "github.com/Astemirdum/bookshelf-service/swagger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc     BookshelfService
	tokens  md.TokenParser
	metrics *metrics.Metrics
	log     *zap.Logger
}

func New(svc BookshelfService, tokens md.TokenParser, log *zap.Logger) *Handler {
	return &Handler{
		svc:     svc,
		tokens:  tokens,
		metrics: metrics.New("bookshelf"),
		log:     log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(h.metrics.Middleware())

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", h.metrics.Handler())
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/sign-up", h.SignUp)
	api.POST("/auth/sign-in", h.SignIn)

	books := api.Group("/books", md.JwtAuthentication(h.tokens))
	books.GET("", h.ListPersonalLibrary)
	books.GET("/discover", h.ListDiscoverCatalog)
	books.POST("", h.CreateBook)
	books.GET("/:bookId", h.GetBook)
	books.GET("/:bookId/edit", h.GetBookForEdit)
	books.PATCH("/:bookId", h.UpdateBook)
	books.DELETE("/:bookId", h.DeleteBook)

	books.POST("/:bookId/reviews", h.AddReview)
	books.PATCH("/:bookId/reviews/:reviewId", h.EditReview)
	books.DELETE("/:bookId/reviews/:reviewId", h.DeleteReview)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicate),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrConcurrentUpdate):
		code = http.StatusConflict
	}
	return echo.NewHTTPError(code, err.Error())
}

func requester(c echo.Context) (auth.Requester, error) {
	r, err := auth.GetRequester(c.Request().Context())
	if err != nil {
		return auth.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return r, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

type listQuery struct {
	status     *model.Status
	page, size int
}

func parseListQuery(c echo.Context) (listQuery, error) {
	var (
		q   listQuery
		err error
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if q.page, err = strconv.Atoi(pageParam); err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if q.size, err = strconv.Atoi(sizeParam); err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := model.Status(statusParam)
		if !status.Valid() {
			return q, echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
		}
		q.status = &status
	}
	return q, nil
}
