package handler

import (
	"net/http"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/labstack/echo/v4"
)

// AddReview
// @Summary      review a book
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "book id"
// @Param        input body model.ReviewRequest true "review"
// @Success      201 {object} model.Book
// @Failure      400,404,409 {object} echo.HTTPError
// @Router       /api/v1/books/{bookId}/reviews [post]
func (h *Handler) AddReview(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	bookID, err := uuidParam(c, "bookId")
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.AddReview(c.Request().Context(), bookID, model.ReviewDraft{
		ReviewerID:   r.UserID,
		ReviewerName: r.Username,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// EditReview
// @Summary      change own review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "book id"
// @Param        reviewId path string true "review id"
// @Param        input body model.ReviewRequest true "review"
// @Success      200 {object} model.Book
// @Failure      400,403,404,409 {object} echo.HTTPError
// @Router       /api/v1/books/{bookId}/reviews/{reviewId} [patch]
func (h *Handler) EditReview(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	bookID, err := uuidParam(c, "bookId")
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "reviewId")
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.EditReview(c.Request().Context(), bookID, reviewID, r.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteReview
// @Summary      delete own review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "book id"
// @Param        reviewId path string true "review id"
// @Success      200 {object} model.Book
// @Failure      404 {object} echo.HTTPError
// @Router       /api/v1/books/{bookId}/reviews/{reviewId} [delete]
func (h *Handler) DeleteReview(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	bookID, err := uuidParam(c, "bookId")
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "reviewId")
	if err != nil {
		return err
	}
	book, err := h.svc.DeleteReview(c.Request().Context(), bookID, reviewID, r.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}
