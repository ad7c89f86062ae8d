package handler

import (
	"net/http"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/labstack/echo/v4"
)

// ListPersonalLibrary
// @Summary      books of the requester
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "WANT_TO_READ or READ"
// @Param        page query int false "page"
// @Param        size query int false "size"
// @Success      200 {object} model.ListBooks
// @Router       /api/v1/books [get]
func (h *Handler) ListPersonalLibrary(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	q, err := parseListQuery(c)
	if err != nil {
		return err
	}
	books, err := h.svc.ListPersonalLibrary(c.Request().Context(), r.UserID, q.status, q.page, q.size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// ListDiscoverCatalog
// @Summary      books of every user
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "WANT_TO_READ or READ"
// @Param        page query int false "page"
// @Param        size query int false "size"
// @Success      200 {object} model.ListBooks
// @Router       /api/v1/books/discover [get]
func (h *Handler) ListDiscoverCatalog(c echo.Context) error {
	q, err := parseListQuery(c)
	if err != nil {
		return err
	}
	books, err := h.svc.ListDiscoverCatalog(c.Request().Context(), q.status, q.page, q.size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// CreateBook
// @Summary      add a book to the requester's library
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body model.CreateBookRequest true "book"
// @Success      201 {object} model.Book
// @Failure      400,409 {object} echo.HTTPError
// @Router       /api/v1/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.CreateBook(c.Request().Context(), r.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// GetBook
// @Summary      book with its reviews
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "book id"
// @Success      200 {object} model.BookView
// @Failure      404 {object} echo.HTTPError
// @Router       /api/v1/books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	bookID, err := uuidParam(c, "bookId")
	if err != nil {
		return err
	}
	view, err := h.svc.ViewBook(c.Request().Context(), bookID, r.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// GetBookForEdit
// @Summary      book of the requester for editing
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "book id"
// @Success      200 {object} model.Book
// @Failure      404 {object} echo.HTTPError
// @Router       /api/v1/books/{bookId}/edit [get]
func (h *Handler) GetBookForEdit(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	bookID, err := uuidParam(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.svc.GetBookForEdit(c.Request().Context(), bookID, r.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// UpdateBook
// @Summary      change a book of the requester
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path string true "book id"
// @Param        input body model.BookPatch true "fields to change"
// @Success      200 {object} model.Book
// @Failure      400,404,409 {object} echo.HTTPError
// @Router       /api/v1/books/{bookId} [patch]
func (h *Handler) UpdateBook(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	bookID, err := uuidParam(c, "bookId")
	if err != nil {
		return err
	}
	var patch model.BookPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.svc.UpdateBook(c.Request().Context(), bookID, r.UserID, patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook
// @Summary      delete a book of the requester
// @Tags         books
// @Security     BearerAuth
// @Param        bookId path string true "book id"
// @Success      204
// @Failure      404 {object} echo.HTTPError
// @Router       /api/v1/books/{bookId} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	r, err := requester(c)
	if err != nil {
		return err
	}
	bookID, err := uuidParam(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteBook(c.Request().Context(), bookID, r.UserID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
