package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type BookRepository interface {
	GetBook(ctx context.Context, bookID uuid.UUID) (model.Book, error)
	FindByTitleAuthor(ctx context.Context, title, author string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CountBooks(ctx context.Context, filter model.BookFilter) (int, error)
	CreateBook(ctx context.Context, draft model.BookDraft) (model.Book, error)
	UpdateBook(ctx context.Context, bookID, ownerID uuid.UUID, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, bookID, ownerID uuid.UUID) error
	SaveReviews(ctx context.Context, bookID uuid.UUID, reviews []model.Review, average float64, expectedVersion int64) (model.Book, error)
	DeleteReview(ctx context.Context, bookID, reviewID, reviewerID uuid.UUID) (model.Book, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (model.User, error)
	GetUserByName(ctx context.Context, username string) (model.User, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var (
	_ BookRepository = (*repository)(nil)
	_ UserRepository = (*repository)(nil)
)

const (
	booksTableName = `books`
	usersTableName = `users`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bookColumns = []string{
		"id", "title", "author", "status", "owner_id", "image_ref",
		"reviews", "average_rating", "version", "created_at", "updated_at",
	}
	returningBook = "returning " + strings.Join(bookColumns, ", ")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) collectBook(ctx context.Context, query string, args ...any) (model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, bookID uuid.UUID) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.collectBook(ctx, query, args...)
}

func (r *repository) FindByTitleAuthor(ctx context.Context, title, author string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"title": title, "author": author}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.collectBook(ctx, query, args...)
}

func applyFilter(q sq.SelectBuilder, filter model.BookFilter) sq.SelectBuilder {
	if filter.OwnerID != nil {
		q = q.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": *filter.Status})
	}
	return q
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := applyFilter(qb.Select(bookColumns...).From(booksTableName), filter).
		OrderBy("created_at", "id")
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return books, nil
}

func (r *repository) CountBooks(ctx context.Context, filter model.BookFilter) (int, error) {
	query, args, err := applyFilter(qb.Select("count(*)").From(booksTableName), filter).ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateBook(ctx context.Context, draft model.BookDraft) (model.Book, error) {
	status := draft.Status
	if status == "" {
		status = model.StatusWantToRead
	}
	query, args, err := qb.Insert(booksTableName).
		Columns("id", "title", "author", "status", "owner_id", "image_ref").
		Values(uuid.New(), draft.Title, draft.Author, status, draft.OwnerID, draft.ImageRef).
		Suffix(returningBook).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	book, err := r.collectBook(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errors.Wrapf(errs.ErrDuplicate, "book %q by %q", draft.Title, draft.Author)
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook changes the patched fields of a book owned by ownerID. A book
// owned by someone else is reported as errs.ErrNotFound.
func (r *repository) UpdateBook(ctx context.Context, bookID, ownerID uuid.UUID, patch model.BookPatch) (model.Book, error) {
	set := sq.Eq{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.ImageRef != nil {
		set["image_ref"] = *patch.ImageRef
	}

	query, args, err := qb.Update(booksTableName).
		SetMap(set).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": bookID, "owner_id": ownerID}).
		Suffix(returningBook).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	book, err := r.collectBook(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errors.Wrap(errs.ErrDuplicate, "title and author")
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, bookID, ownerID uuid.UUID) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": bookID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// SaveReviews replaces the review collection and its average if the stored
// version still equals expectedVersion.
func (r *repository) SaveReviews(ctx context.Context, bookID uuid.UUID, reviews []model.Review, average float64, expectedVersion int64) (model.Book, error) {
	if reviews == nil {
		reviews = []model.Review{}
	}
	q := `
update books
set reviews        = @reviews,
    average_rating = @average,
    version        = version + 1,
    updated_at     = now()
where id = @id and version = @version
` + returningBook
	args := pgx.NamedArgs{
		"id":      bookID,
		"reviews": reviews,
		"average": average,
		"version": expectedVersion,
	}
	book, err := r.collectBook(ctx, q, args)
	if errors.Is(err, errs.ErrNotFound) {
		if _, getErr := r.GetBook(ctx, bookID); getErr != nil {
			return model.Book{}, getErr
		}
		return model.Book{}, errs.ErrStaleVersion
	}
	return book, err
}

// DeleteReview removes the review only when the book holds a review with that
// id written by reviewerID, and recomputes the average in the same statement.
// Missing book, missing review and foreign review are all errs.ErrNotFound.
func (r *repository) DeleteReview(ctx context.Context, bookID, reviewID, reviewerID uuid.UUID) (model.Book, error) {
	q := `
update books b
set reviews        = coalesce((select jsonb_agg(e.elem order by e.ord)
                               from jsonb_array_elements(b.reviews) with ordinality as e(elem, ord)
                               where e.elem ->> 'id' <> @review_id::text), '[]'::jsonb),
    average_rating = coalesce((select avg((e.elem ->> 'rating')::numeric)
                               from jsonb_array_elements(b.reviews) as e(elem)
                               where e.elem ->> 'id' <> @review_id::text), 0),
    version        = b.version + 1,
    updated_at     = now()
where b.id = @book_id
  and b.reviews @> jsonb_build_array(jsonb_build_object('id', @review_id::text, 'reviewerId', @reviewer_id::text))
` + returningBook
	args := pgx.NamedArgs{
		"book_id":     bookID,
		"review_id":   reviewID.String(),
		"reviewer_id": reviewerID.String(),
	}
	return r.collectBook(ctx, q, args)
}
