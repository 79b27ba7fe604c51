package service

import (
	"errors"

	"github.com/tobenna/animon/data"
	"github.com/tobenna/animon/internal/validator"
	"github.com/tobenna/animon/repository"
)

type votes interface {
	CastVote(userID string, reviewID int64, voteType data.VoteType) (data.VoteOutcome, error)
	GetVoteTally(reviewID int64) (data.VoteTally, error)
	ListUserVotes(userID string) (map[int64]data.VoteType, error)
}

// CastVote applies the three-way vote toggle on a review. Users cannot vote
// on their own reviews; the check happens before any write, so a rejected
// cast leaves no vote row behind.
func (s *service) CastVote(userID string, reviewID int64, voteType data.VoteType) (data.VoteOutcome, error) {
	v := validator.New()
	if data.ValidateVoteType(v, voteType); !v.Valid() {
		return "", s.failedValidation(v.Errors)
	}
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return "", ErrRecordNotFound
		default:
			return "", err
		}
	}
	if review.UserID == userID {
		return "", ErrSelfVote
	}
	outcome, err := s.repo.CastVote(&data.Vote{
		ReviewID: reviewID,
		UserID:   userID,
		VoteType: voteType,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return "", ErrEditConflict
		default:
			return "", err
		}
	}
	return outcome, nil
}

// GetVoteTally retrieves a review's like and dislike counts.
func (s *service) GetVoteTally(reviewID int64) (data.VoteTally, error) {
	return s.repo.GetVoteTally(reviewID)
}

// ListUserVotes loads the viewer's active votes keyed by review id so the
// UI can render which of their votes are currently in effect.
func (s *service) ListUserVotes(userID string) (map[int64]data.VoteType, error) {
	return s.repo.GetVotesForUser(userID)
}
