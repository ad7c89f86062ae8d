package handler

import (
	"context"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookshelfService interface {
	ListPersonalLibrary(ctx context.Context, ownerID uuid.UUID, status *model.Status, page, size int) (model.ListBooks, error)
	ListDiscoverCatalog(ctx context.Context, status *model.Status, page, size int) (model.ListBooks, error)
	CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (model.Book, error)
	ViewBook(ctx context.Context, bookID, requesterID uuid.UUID) (model.BookView, error)
	GetBookForEdit(ctx context.Context, bookID, requesterID uuid.UUID) (model.Book, error)
	UpdateBook(ctx context.Context, bookID, ownerID uuid.UUID, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, bookID, ownerID uuid.UUID) error

	AddReview(ctx context.Context, bookID uuid.UUID, draft model.ReviewDraft) (model.Book, error)
	EditReview(ctx context.Context, bookID, reviewID, reviewerID uuid.UUID, req model.ReviewRequest) (model.Book, error)
	DeleteReview(ctx context.Context, bookID, reviewID, reviewerID uuid.UUID) (model.Book, error)

	SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error)
	SignIn(ctx context.Context, req model.SignInRequest) (model.AuthResponse, error)
}

var _ BookshelfService = (*service.Service)(nil)
