package service

import (
	"errors"

	"github.com/tobenna/animon/data"
	"github.com/tobenna/animon/repository"
)

type aggregator interface {
	Recompute(itemUID string, category data.Category) error
}

// Recompute refreshes an item's denormalized aggregate rating and review
// count from its current review set: the mean rating rounded to two decimal
// places (zero when the review set is empty) and the review count. The
// operation is idempotent; running it again with no intervening review
// mutation writes the same values.
func (s *service) Recompute(itemUID string, category data.Category) error {
	partition, err := data.PartitionFor(category)
	if err != nil {
		return ErrUnknownCategory
	}
	_, _, err = s.repo.RecomputeItemRating(partition, itemUID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// scheduleRecompute runs Recompute in the background after a review
// mutation. The aggregate is a best-effort cache: a failure here must not
// undo or block the review write that triggered it, so the error is logged
// and dropped. A stale aggregate corrects itself on the next mutation.
func (s *service) scheduleRecompute(itemUID string, category data.Category) {
	s.background(func() {
		err := s.Recompute(itemUID, category)
		if err != nil {
			s.logger.PrintError(err, map[string]string{
				"item_uid": itemUID,
				"category": string(category),
			})
		}
	})
}
