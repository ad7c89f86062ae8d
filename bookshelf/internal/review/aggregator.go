// Package review maintains a book's embedded review collection: one review per
// reviewer, author-only mutation, and the running average rating.
//
// Functions never mutate their input slice; callers persist the returned
// collection together with the returned average in a single write.
package review

import (
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	MinRating = 1
	MaxRating = 5
)

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errors.Wrapf(errs.ErrValidation, "rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	return nil
}

// Average is the arithmetic mean of the ratings, 0 for no reviews.
func Average(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for i := range reviews {
		sum += reviews[i].Rating
	}
	return float64(sum) / float64(len(reviews))
}

func FindByReviewer(reviews []model.Review, reviewerID uuid.UUID) (model.Review, bool) {
	for i := range reviews {
		if reviews[i].ReviewerID == reviewerID {
			return reviews[i], true
		}
	}
	return model.Review{}, false
}

func indexOf(reviews []model.Review, reviewID uuid.UUID) int {
	for i := range reviews {
		if reviews[i].ID == reviewID {
			return i
		}
	}
	return -1
}

// Add appends a review by draft.ReviewerID. It fails with errs.ErrConflict if
// that reviewer already reviewed the book.
func Add(reviews []model.Review, draft model.ReviewDraft, now time.Time) ([]model.Review, model.Review, float64, error) {
	if draft.ReviewerID == uuid.Nil {
		return nil, model.Review{}, 0, errors.Wrap(errs.ErrValidation, "reviewer is required")
	}
	if err := ValidateRating(draft.Rating); err != nil {
		return nil, model.Review{}, 0, err
	}
	if _, ok := FindByReviewer(reviews, draft.ReviewerID); ok {
		return nil, model.Review{}, 0, errs.ErrConflict
	}

	added := model.Review{
		ID:           uuid.New(),
		ReviewerID:   draft.ReviewerID,
		ReviewerName: draft.ReviewerName,
		Rating:       draft.Rating,
		Comment:      draft.Comment,
		CreatedAt:    now.UTC(),
	}
	out := make([]model.Review, 0, len(reviews)+1)
	out = append(out, reviews...)
	out = append(out, added)
	return out, added, Average(out), nil
}

// Edit changes rating and comment of reviewID. Only its author may edit it.
func Edit(reviews []model.Review, reviewID, reviewerID uuid.UUID, rating int, comment string, now time.Time) ([]model.Review, model.Review, float64, error) {
	i := indexOf(reviews, reviewID)
	if i < 0 {
		return nil, model.Review{}, 0, errors.Wrap(errs.ErrNotFound, "review")
	}
	if reviews[i].ReviewerID != reviewerID {
		return nil, model.Review{}, 0, errs.ErrForbidden
	}
	if err := ValidateRating(rating); err != nil {
		return nil, model.Review{}, 0, err
	}

	out := make([]model.Review, len(reviews))
	copy(out, reviews)
	updatedAt := now.UTC()
	out[i].Rating = rating
	out[i].Comment = comment
	out[i].UpdatedAt = &updatedAt
	return out, out[i], Average(out), nil
}

// Remove drops reviewID if it exists and belongs to reviewerID. A missing
// review and a foreign review both report errs.ErrNotFound.
//
// Stored deletions do not go through Remove: the repository deletes and
// recomputes the average in one conditional statement with the same rules.
func Remove(reviews []model.Review, reviewID, reviewerID uuid.UUID) ([]model.Review, float64, error) {
	i := indexOf(reviews, reviewID)
	if i < 0 || reviews[i].ReviewerID != reviewerID {
		return nil, 0, errors.Wrap(errs.ErrNotFound, "review")
	}
	out := make([]model.Review, 0, len(reviews)-1)
	out = append(out, reviews[:i]...)
	out = append(out, reviews[i+1:]...)
	return out, Average(out), nil
}
