package handler

import (
	"net/http"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/labstack/echo/v4"
)

// SignUp
// @Summary      register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body model.SignUpRequest true "credentials"
// @Success      201 {object} model.User
// @Failure      400,409 {object} echo.HTTPError
// @Router       /api/v1/auth/sign-up [post]
func (h *Handler) SignUp(c echo.Context) error {
	var req model.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.SignUp(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// SignIn
// @Summary      issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body model.SignInRequest true "credentials"
// @Success      200 {object} model.AuthResponse
// @Failure      400,401 {object} echo.HTTPError
// @Router       /api/v1/auth/sign-in [post]
func (h *Handler) SignIn(c echo.Context) error {
	var req model.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.svc.SignIn(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
