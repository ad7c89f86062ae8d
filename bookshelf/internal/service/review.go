package service

import (
	"context"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/review"
	"github.com/Astemirdum/bookshelf-service/pkg/kafka"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxReviewAttempts = 3

type reviewChange func(reviews []model.Review) ([]model.Review, model.Review, float64, error)

// changeReviews reads the book, applies change to its reviews and writes them
// back conditioned on the version read. A lost race re-reads and re-applies.
func (s *Service) changeReviews(ctx context.Context, bookID uuid.UUID, change reviewChange) (model.Book, model.Review, error) {
	for attempt := 1; attempt <= maxReviewAttempts; attempt++ {
		book, err := s.books.GetBook(ctx, bookID)
		if err != nil {
			return model.Book{}, model.Review{}, err
		}
		reviews, changed, avg, err := change(book.Reviews)
		if err != nil {
			return model.Book{}, model.Review{}, err
		}
		saved, err := s.books.SaveReviews(ctx, bookID, reviews, avg, book.Version)
		if err == nil {
			return saved, changed, nil
		}
		if !errors.Is(err, errs.ErrStaleVersion) {
			return model.Book{}, model.Review{}, err
		}
		s.log.Debug("stale reviews version",
			zap.Stringer("bookId", bookID),
			zap.Int64("version", book.Version),
			zap.Int("attempt", attempt))
	}
	return model.Book{}, model.Review{}, errs.ErrConcurrentUpdate
}

// AddReview snapshots the reviewer's current username from the user
// directory into the review.
func (s *Service) AddReview(ctx context.Context, bookID uuid.UUID, draft model.ReviewDraft) (model.Book, error) {
	reviewer, err := s.users.GetUser(ctx, draft.ReviewerID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errors.Wrap(errs.ErrValidation, "unknown reviewer")
		}
		return model.Book{}, err
	}
	draft.ReviewerName = reviewer.Username

	book, added, err := s.changeReviews(ctx, bookID, func(reviews []model.Review) ([]model.Review, model.Review, float64, error) {
		return review.Add(reviews, draft, s.now())
	})
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.EventReviewAdded, draft.ReviewerID, bookID, &added.ID, added.Rating)
	return book, nil
}

func (s *Service) EditReview(ctx context.Context, bookID, reviewID, reviewerID uuid.UUID, req model.ReviewRequest) (model.Book, error) {
	book, edited, err := s.changeReviews(ctx, bookID, func(reviews []model.Review) ([]model.Review, model.Review, float64, error) {
		return review.Edit(reviews, reviewID, reviewerID, req.Rating, req.Comment, s.now())
	})
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.EventReviewEdited, reviewerID, bookID, &edited.ID, edited.Rating)
	return book, nil
}

// DeleteReview removes a review written by reviewerID. A missing book, a
// missing review and someone else's review are all errs.ErrNotFound.
func (s *Service) DeleteReview(ctx context.Context, bookID, reviewID, reviewerID uuid.UUID) (model.Book, error) {
	if reviewerID == uuid.Nil {
		return model.Book{}, errors.Wrap(errs.ErrNotFound, "review")
	}
	book, err := s.books.DeleteReview(ctx, bookID, reviewID, reviewerID)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, kafka.EventReviewDeleted, reviewerID, bookID, &reviewID, 0)
	return book, nil
}
