package service

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/events"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/ownership"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/repository"
	"github.com/Astemirdum/bookshelf-service/pkg/kafka"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 100_000
)

type TokenIssuer interface {
	Issue(userID uuid.UUID, username string) (string, time.Time, error)
}

type Service struct {
	log       *zap.Logger
	books     repository.BookRepository
	users     repository.UserRepository
	publisher events.Publisher
	tokens    TokenIssuer

	now        func() time.Time
	bcryptCost int
}

func NewService(
	books repository.BookRepository,
	users repository.UserRepository,
	publisher events.Publisher,
	tokens TokenIssuer,
	log *zap.Logger,
) *Service {
	return &Service{
		log:        log.Named("service"),
		books:      books,
		users:      users,
		publisher:  publisher,
		tokens:     tokens,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *Service) publish(ctx context.Context, eventType kafka.EventType, userID, bookID uuid.UUID, reviewID *uuid.UUID, rating int) {
	s.publisher.Publish(ctx, kafka.EventBook{
		Timestamp: s.now().UTC(),
		UserID:    userID,
		BookID:    bookID,
		ReviewID:  reviewID,
		EventType: eventType,
		Rating:    rating,
	})
}

func normalizePaging(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func (s *Service) listBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return model.ListBooks{}, errors.Wrapf(errs.ErrValidation, "unknown status %q", *filter.Status)
	}
	if filter.Page > maxPage {
		return model.ListBooks{}, errors.Wrapf(errs.ErrValidation, "page must not exceed %d", maxPage)
	}
	filter.Page, filter.Size = normalizePaging(filter.Page, filter.Size)

	var (
		items []model.Book
		total int
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		items, err = s.books.ListBooks(gCtx, filter)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.books.CountBooks(gCtx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ListBooks{}, err
	}
	if items == nil {
		items = []model.Book{}
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

// ListPersonalLibrary lists the books owned by ownerID.
func (s *Service) ListPersonalLibrary(ctx context.Context, ownerID uuid.UUID, status *model.Status, page, size int) (model.ListBooks, error) {
	if ownerID == uuid.Nil {
		return model.ListBooks{}, errors.Wrap(errs.ErrValidation, "owner is required")
	}
	return s.listBooks(ctx, model.BookFilter{OwnerID: &ownerID, Status: status, Page: page, Size: size})
}

// ListDiscoverCatalog lists books of every owner.
func (s *Service) ListDiscoverCatalog(ctx context.Context, status *model.Status, page, size int) (model.ListBooks, error) {
	return s.listBooks(ctx, model.BookFilter{Status: status, Page: page, Size: size})
}

func (s *Service) CreateBook(ctx context.Context, ownerID uuid.UUID, req model.CreateBookRequest) (model.Book, error) {
	draft := model.BookDraft{
		Title:    strings.TrimSpace(req.Title),
		Author:   strings.TrimSpace(req.Author),
		Status:   req.Status,
		OwnerID:  ownerID,
		ImageRef: req.ImageRef,
	}
	switch {
	case draft.OwnerID == uuid.Nil:
		return model.Book{}, errors.Wrap(errs.ErrValidation, "owner is required")
	case draft.Title == "":
		return model.Book{}, errors.Wrap(errs.ErrValidation, "title is required")
	case draft.Author == "":
		return model.Book{}, errors.Wrap(errs.ErrValidation, "author is required")
	case draft.Status != "" && !draft.Status.Valid():
		return model.Book{}, errors.Wrapf(errs.ErrValidation, "unknown status %q", draft.Status)
	}

	_, err := s.books.FindByTitleAuthor(ctx, draft.Title, draft.Author)
	switch {
	case err == nil:
		return model.Book{}, errors.Wrapf(errs.ErrDuplicate, "book %q by %q", draft.Title, draft.Author)
	case !errors.Is(err, errs.ErrNotFound):
		return model.Book{}, err
	}

	book, err := s.books.CreateBook(ctx, draft)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.EventBookCreated, ownerID, book.ID, nil, 0)
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, bookID uuid.UUID) (model.Book, error) {
	return s.books.GetBook(ctx, bookID)
}

// ViewBook returns the book together with whether requesterID owns it.
func (s *Service) ViewBook(ctx context.Context, bookID, requesterID uuid.UUID) (model.BookView, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return model.BookView{}, err
	}
	return model.BookView{Book: book, IsOwner: ownership.IsOwner(requesterID, book)}, nil
}

// GetBookForEdit hides books of other owners as not found.
func (s *Service) GetBookForEdit(ctx context.Context, bookID, requesterID uuid.UUID) (model.Book, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}
	if !ownership.IsOwner(requesterID, book) {
		return model.Book{}, errors.Wrap(errs.ErrNotFound, "book")
	}
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, bookID, ownerID uuid.UUID, patch model.BookPatch) (model.Book, error) {
	if patch.Empty() {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "nothing to update")
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return model.Book{}, errors.Wrap(errs.ErrValidation, "title is required")
		}
		patch.Title = &title
	}
	if patch.Author != nil {
		author := strings.TrimSpace(*patch.Author)
		if author == "" {
			return model.Book{}, errors.Wrap(errs.ErrValidation, "author is required")
		}
		patch.Author = &author
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Book{}, errors.Wrapf(errs.ErrValidation, "unknown status %q", *patch.Status)
	}

	book, err := s.books.UpdateBook(ctx, bookID, ownerID, patch)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.EventBookUpdated, ownerID, book.ID, nil, 0)
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, bookID, ownerID uuid.UUID) error {
	if err := s.books.DeleteBook(ctx, bookID, ownerID); err != nil {
		return err
	}
	s.publish(ctx, kafka.EventBookDeleted, ownerID, bookID, nil, 0)
	return nil
}
