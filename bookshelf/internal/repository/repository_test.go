//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/review"
	"github.com/Astemirdum/bookshelf-service/bookshelf/migrations"
	"github.com/Astemirdum/bookshelf-service/pkg/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func setupRepository(t *testing.T) *repository {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("bookshelf"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Errorf("terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPostgresDBFromDSN(ctx, dsn, 4, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo, err := NewRepository(pool, zap.NewExample().Named("test"))
	require.NoError(t, err)
	return repo
}

func mustUser(t *testing.T, repo *repository, name string) model.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), model.User{Username: name, PasswordHash: "hash"})
	require.NoError(t, err)
	return u
}

func TestRepository(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	alice := mustUser(t, repo, "alice")
	bob := mustUser(t, repo, "bob")
	carol := mustUser(t, repo, "carol")

	t.Run("users", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, model.User{Username: "alice", PasswordHash: "x"})
		require.ErrorIs(t, err, errs.ErrDuplicate)

		got, err := repo.GetUserByName(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, bob.ID, got.ID)

		_, err = repo.GetUser(ctx, uuid.New())
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	book, err := repo.CreateBook(ctx, model.BookDraft{Title: "Dune", Author: "Frank Herbert", OwnerID: alice.ID})
	require.NoError(t, err)
	require.Equal(t, model.StatusWantToRead, book.Status)
	require.Empty(t, book.Reviews)
	require.Equal(t, int64(1), book.Version)

	t.Run("duplicate title and author", func(t *testing.T) {
		_, err := repo.CreateBook(ctx, model.BookDraft{Title: "Dune", Author: "Frank Herbert", OwnerID: bob.ID})
		require.ErrorIs(t, err, errs.ErrDuplicate)

		found, err := repo.FindByTitleAuthor(ctx, "Dune", "Frank Herbert")
		require.NoError(t, err)
		require.Equal(t, book.ID, found.ID)
	})

	t.Run("owner scoped update and delete", func(t *testing.T) {
		status := model.StatusRead
		_, err := repo.UpdateBook(ctx, book.ID, bob.ID, model.BookPatch{Status: &status})
		require.ErrorIs(t, err, errs.ErrNotFound)

		untouched, err := repo.GetBook(ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, model.StatusWantToRead, untouched.Status)
		require.True(t, book.UpdatedAt.Equal(untouched.UpdatedAt))

		updated, err := repo.UpdateBook(ctx, book.ID, alice.ID, model.BookPatch{Status: &status})
		require.NoError(t, err)
		require.Equal(t, model.StatusRead, updated.Status)

		other, err := repo.CreateBook(ctx, model.BookDraft{Title: "Emma", Author: "Jane Austen", OwnerID: bob.ID})
		require.NoError(t, err)
		require.ErrorIs(t, repo.DeleteBook(ctx, other.ID, alice.ID), errs.ErrNotFound)
		_, err = repo.GetBook(ctx, other.ID)
		require.NoError(t, err)
		require.NoError(t, repo.DeleteBook(ctx, other.ID, bob.ID))
		_, err = repo.GetBook(ctx, other.ID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("list and count", func(t *testing.T) {
		_, err := repo.CreateBook(ctx, model.BookDraft{Title: "Ulysses", Author: "James Joyce", OwnerID: bob.ID})
		require.NoError(t, err)

		all, err := repo.ListBooks(ctx, model.BookFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)

		count, err := repo.CountBooks(ctx, model.BookFilter{OwnerID: &alice.ID})
		require.NoError(t, err)
		require.Equal(t, 1, count)

		page, err := repo.ListBooks(ctx, model.BookFilter{Page: 2, Size: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, "Ulysses", page[0].Title)
	})

	t.Run("reviews", func(t *testing.T) {
		current, err := repo.GetBook(ctx, book.ID)
		require.NoError(t, err)

		now := time.Now().UTC()
		reviews, byBob, avg, err := review.Add(current.Reviews, model.ReviewDraft{ReviewerID: bob.ID, ReviewerName: "bob", Rating: 4}, now)
		require.NoError(t, err)
		saved, err := repo.SaveReviews(ctx, book.ID, reviews, avg, current.Version)
		require.NoError(t, err)
		require.Len(t, saved.Reviews, 1)
		require.Equal(t, 4.0, saved.AverageRating)

		_, err = repo.SaveReviews(ctx, book.ID, reviews, avg, current.Version)
		require.ErrorIs(t, err, errs.ErrStaleVersion)
		_, err = repo.SaveReviews(ctx, uuid.New(), reviews, avg, 1)
		require.ErrorIs(t, err, errs.ErrNotFound)

		reviews, _, avg, err = review.Add(saved.Reviews, model.ReviewDraft{ReviewerID: carol.ID, ReviewerName: "carol", Rating: 2}, now)
		require.NoError(t, err)
		saved, err = repo.SaveReviews(ctx, book.ID, reviews, avg, saved.Version)
		require.NoError(t, err)
		require.Equal(t, 3.0, saved.AverageRating)

		_, err = repo.DeleteReview(ctx, book.ID, byBob.ID, carol.ID)
		require.ErrorIs(t, err, errs.ErrNotFound)
		_, err = repo.DeleteReview(ctx, book.ID, uuid.New(), bob.ID)
		require.ErrorIs(t, err, errs.ErrNotFound)

		afterDelete, err := repo.DeleteReview(ctx, book.ID, byBob.ID, bob.ID)
		require.NoError(t, err)
		require.Len(t, afterDelete.Reviews, 1)
		require.Equal(t, carol.ID, afterDelete.Reviews[0].ReviewerID)
		require.Equal(t, 2.0, afterDelete.AverageRating)
		require.Equal(t, saved.Version+1, afterDelete.Version)

		last, err := repo.DeleteReview(ctx, book.ID, afterDelete.Reviews[0].ID, carol.ID)
		require.NoError(t, err)
		require.Empty(t, last.Reviews)
		require.Equal(t, 0.0, last.AverageRating)
	})
}
