package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	repo_mocks "github.com/Astemirdum/bookshelf-service/bookshelf/internal/repository/mocks"
	"github.com/Astemirdum/bookshelf-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.EventBook
}

func (p *recordingPublisher) Publish(_ context.Context, event kafka.EventBook) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType)
	}
	return out
}

type stubIssuer struct{}

func (stubIssuer) Issue(userID uuid.UUID, _ string) (string, time.Time, error) {
	return "token-" + userID.String(), time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	books *repo_mocks.MockBookRepository
	users *repo_mocks.MockUserRepository
	pub   *recordingPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	c := gomock.NewController(t)
	f := fixture{
		books: repo_mocks.NewMockBookRepository(c),
		users: repo_mocks.NewMockUserRepository(c),
		pub:   &recordingPublisher{},
	}
	f.svc = NewService(f.books, f.users, f.pub, stubIssuer{}, zap.NewExample().Named("test"))
	f.svc.now = func() time.Time { return fixedNow }
	f.svc.bcryptCost = bcrypt.MinCost
	return f
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	bookID := uuid.New()

	type mockBehavior func(f fixture)
	tests := []struct {
		name         string
		ownerID      uuid.UUID
		req          model.CreateBookRequest
		mockBehavior mockBehavior
		wantErr      error
		wantEvents   []kafka.EventType
	}{
		{
			name:    "ok",
			ownerID: ownerID,
			req:     model.CreateBookRequest{Title: "  Dune ", Author: "Frank Herbert"},
			mockBehavior: func(f fixture) {
				f.books.EXPECT().FindByTitleAuthor(gomock.Any(), "Dune", "Frank Herbert").
					Return(model.Book{}, errs.ErrNotFound)
				f.books.EXPECT().CreateBook(gomock.Any(), model.BookDraft{Title: "Dune", Author: "Frank Herbert", OwnerID: ownerID}).
					Return(model.Book{ID: bookID, Title: "Dune", Author: "Frank Herbert", OwnerID: ownerID, Status: model.StatusWantToRead}, nil)
			},
			wantEvents: []kafka.EventType{kafka.EventBookCreated},
		},
		{
			name:    "duplicate",
			ownerID: ownerID,
			req:     model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert"},
			mockBehavior: func(f fixture) {
				f.books.EXPECT().FindByTitleAuthor(gomock.Any(), "Dune", "Frank Herbert").
					Return(model.Book{ID: uuid.New()}, nil)
			},
			wantErr:    errs.ErrDuplicate,
			wantEvents: []kafka.EventType{},
		},
		{
			name:    "duplicate race caught by index",
			ownerID: ownerID,
			req:     model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert"},
			mockBehavior: func(f fixture) {
				f.books.EXPECT().FindByTitleAuthor(gomock.Any(), "Dune", "Frank Herbert").
					Return(model.Book{}, errs.ErrNotFound)
				f.books.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
					Return(model.Book{}, errs.ErrDuplicate)
			},
			wantErr:    errs.ErrDuplicate,
			wantEvents: []kafka.EventType{},
		},
		{
			name:         "blank title",
			ownerID:      ownerID,
			req:          model.CreateBookRequest{Title: "   ", Author: "Frank Herbert"},
			mockBehavior: func(f fixture) {},
			wantErr:      errs.ErrValidation,
			wantEvents:   []kafka.EventType{},
		},
		{
			name:         "no owner",
			ownerID:      uuid.Nil,
			req:          model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert"},
			mockBehavior: func(f fixture) {},
			wantErr:      errs.ErrValidation,
			wantEvents:   []kafka.EventType{},
		},
		{
			name:         "bad status",
			ownerID:      ownerID,
			req:          model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Status: "READING"},
			mockBehavior: func(f fixture) {},
			wantErr:      errs.ErrValidation,
			wantEvents:   []kafka.EventType{},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			test.mockBehavior(f)

			book, err := f.svc.CreateBook(context.Background(), test.ownerID, test.req)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, bookID, book.ID)
			}
			require.Equal(t, test.wantEvents, f.pub.types())
		})
	}
}

func TestService_GetBookForEdit(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	book := model.Book{ID: uuid.New(), OwnerID: ownerID}

	f := newFixture(t)
	f.books.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil).Times(3)

	got, err := f.svc.GetBookForEdit(context.Background(), book.ID, ownerID)
	require.NoError(t, err)
	require.Equal(t, book, got)

	_, err = f.svc.GetBookForEdit(context.Background(), book.ID, uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)

	view, err := f.svc.ViewBook(context.Background(), book.ID, uuid.New())
	require.NoError(t, err)
	require.False(t, view.IsOwner)
}

func TestService_UpdateBook(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	bookID := uuid.New()

	t.Run("trims and publishes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		title := " Emma  "
		f.books.EXPECT().UpdateBook(gomock.Any(), bookID, ownerID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, patch model.BookPatch) (model.Book, error) {
				require.Equal(t, "Emma", *patch.Title)
				return model.Book{ID: bookID, Title: *patch.Title, OwnerID: ownerID}, nil
			})

		book, err := f.svc.UpdateBook(context.Background(), bookID, ownerID, model.BookPatch{Title: &title})
		require.NoError(t, err)
		require.Equal(t, "Emma", book.Title)
		require.Equal(t, []kafka.EventType{kafka.EventBookUpdated}, f.pub.types())
	})

	t.Run("foreign book", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		status := model.StatusRead
		f.books.EXPECT().UpdateBook(gomock.Any(), bookID, ownerID, model.BookPatch{Status: &status}).
			Return(model.Book{}, errs.ErrNotFound)

		_, err := f.svc.UpdateBook(context.Background(), bookID, ownerID, model.BookPatch{Status: &status})
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.Empty(t, f.pub.types())
	})

	t.Run("empty patch", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.UpdateBook(context.Background(), bookID, ownerID, model.BookPatch{})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_DeleteBook(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	bookID := uuid.New()

	f := newFixture(t)
	gomock.InOrder(
		f.books.EXPECT().DeleteBook(gomock.Any(), bookID, ownerID).Return(errs.ErrNotFound),
		f.books.EXPECT().DeleteBook(gomock.Any(), bookID, ownerID).Return(nil),
	)

	require.ErrorIs(t, f.svc.DeleteBook(context.Background(), bookID, ownerID), errs.ErrNotFound)
	require.NoError(t, f.svc.DeleteBook(context.Background(), bookID, ownerID))
	require.Equal(t, []kafka.EventType{kafka.EventBookDeleted}, f.pub.types())
}

func TestService_ListDiscoverCatalog(t *testing.T) {
	t.Parallel()
	books := []model.Book{{ID: uuid.New()}, {ID: uuid.New()}}
	want := model.BookFilter{Page: 1, Size: defaultPageSize}

	f := newFixture(t)
	f.books.EXPECT().ListBooks(gomock.Any(), want).Return(books, nil)
	f.books.EXPECT().CountBooks(gomock.Any(), want).Return(7, nil)

	got, err := f.svc.ListDiscoverCatalog(context.Background(), nil, 0, 0)
	require.NoError(t, err)
	require.Equal(t, model.ListBooks{
		Paging: model.Paging{Page: 1, PageSize: defaultPageSize, TotalElements: 7},
		Items:  books,
	}, got)
}

func TestService_ListDiscoverCatalog_PageLimit(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.ListDiscoverCatalog(context.Background(), nil, maxPage+1, 10)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestService_ListPersonalLibrary(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()
	status := model.StatusRead
	want := model.BookFilter{OwnerID: &ownerID, Status: &status, Page: 2, Size: maxPageSize}

	f := newFixture(t)
	f.books.EXPECT().ListBooks(gomock.Any(), want).Return(nil, nil)
	f.books.EXPECT().CountBooks(gomock.Any(), want).Return(0, errors.New("db down"))

	_, err := f.svc.ListPersonalLibrary(context.Background(), ownerID, &status, 2, 1000)
	require.EqualError(t, err, "db down")

	_, err = f.svc.ListPersonalLibrary(context.Background(), ownerID, nil, maxPage+1, 10)
	require.ErrorIs(t, err, errs.ErrValidation)

	bad := model.Status("READING")
	_, err = f.svc.ListPersonalLibrary(context.Background(), ownerID, &bad, 1, 10)
	require.ErrorIs(t, err, errs.ErrValidation)
}
