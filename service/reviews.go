package service

import (
	"errors"

	"github.com/tobenna/animon/data"
	"github.com/tobenna/animon/internal/validator"
	"github.com/tobenna/animon/repository"
)

type reviews interface {
	SubmitReview(userID string, itemUID string, rating int8, reviewText string) (*data.Review, error)
	GetReview(reviewID int64) (*data.Review, error)
	DeleteReview(reviewID int64, requestingUserID string) error
	ListReviews(itemUID string, filters data.Filters) ([]*data.Review, data.Metadata, error)
}

// SubmitReview records a user's review of an item, overwriting the user's
// previous review of the same item if one exists. Validation and category
// resolution happen before any write, so a rejected submission leaves no
// partial state. A successful write schedules re-aggregation of the item's
// rating in the background.
func (s *service) SubmitReview(userID string, itemUID string, rating int8, reviewText string) (*data.Review, error) {
	partition, err := data.ResolvePartition(itemUID)
	if err != nil {
		return nil, ErrUnknownCategory
	}
	review := &data.Review{
		UserID:       userID,
		ItemUID:      itemUID,
		ItemCategory: partition.Category,
		Rating:       rating,
		ReviewText:   reviewText,
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	// Make sure the item actually exists before accepting a review for it.
	_, err = s.repo.GetItem(partition, itemUID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	err = s.repo.UpsertReview(review)
	if err != nil {
		return nil, err
	}
	s.scheduleRecompute(itemUID, review.ItemCategory)
	return review, nil
}

// GetReview retrieves the details of a single review.
func (s *service) GetReview(reviewID int64) (*data.Review, error) {
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return review, nil
}

// DeleteReview removes a review and every vote cast on it, then schedules
// re-aggregation. Only the review's owner may delete it; a rejected delete
// has no side effects.
func (s *service) DeleteReview(reviewID int64, requestingUserID string) error {
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	if review.UserID != requestingUserID {
		return ErrNotPermitted
	}
	err = s.repo.DeleteReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	s.scheduleRecompute(review.ItemUID, review.ItemCategory)
	return nil
}

// ListReviews retrieves a paginated list of an item's reviews, newest first
// by default, with live vote tallies.
func (s *service) ListReviews(itemUID string, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	partition, err := data.ResolvePartition(itemUID)
	if err != nil {
		return nil, data.Metadata{}, ErrUnknownCategory
	}
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	reviews, metadata, err := s.repo.GetAllReviews(itemUID, partition.Category, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return reviews, metadata, nil
}
