package repository

import (
	"context"
	"time"

	"github.com/tobenna/animon/data"
)

type votes interface {
	CastVote(vote *data.Vote) (data.VoteOutcome, error)
	GetVoteTally(reviewID int64) (data.VoteTally, error)
	GetVotesForUser(userID string) (map[int64]data.VoteType, error)
}

// CastVote applies the three-way vote toggle as one statement: an existing
// identical vote is deleted, an existing opposite vote is updated in place,
// and a missing vote is inserted. Every branch is keyed on the
// (review_id, user_id) unique constraint, so concurrent casts by the same
// user serialize onto a single row instead of racing to create duplicates.
func (r *repository) CastVote(vote *data.Vote) (data.VoteOutcome, error) {
	query := `
		WITH existing AS (
			SELECT vote_type
			FROM votes
			WHERE review_id = $1 AND user_id = $2
		), removed AS (
			DELETE FROM votes
			WHERE review_id = $1 AND user_id = $2 AND vote_type = $3
			RETURNING 1
		), replaced AS (
			UPDATE votes
			SET vote_type = $3
			WHERE review_id = $1 AND user_id = $2 AND vote_type <> $3
			RETURNING 1
		), applied AS (
			INSERT INTO votes (review_id, user_id, vote_type)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM existing)
			ON CONFLICT (review_id, user_id) DO NOTHING
			RETURNING 1
		)
		SELECT
			(SELECT count(*) FROM applied),
			(SELECT count(*) FROM removed),
			(SELECT count(*) FROM replaced)`
	var applied, removed, replaced int
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, vote.ReviewID, vote.UserID, vote.VoteType).Scan(&applied, &removed, &replaced)
	if err != nil {
		return "", err
	}
	switch {
	case applied > 0:
		return data.VoteApplied, nil
	case removed > 0:
		return data.VoteRemoved, nil
	case replaced > 0:
		return data.VoteReplaced, nil
	default:
		// A concurrent identical cast won the insert; this statement changed
		// nothing, so report the conflict instead of guessing an outcome.
		return "", ErrEditConflict
	}
}

// GetVoteTally counts a review's votes grouped by type.
func (r *repository) GetVoteTally(reviewID int64) (data.VoteTally, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE vote_type = 'like'),
			COUNT(*) FILTER (WHERE vote_type = 'dislike')
		FROM votes
		WHERE review_id = $1`
	var tally data.VoteTally
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(&tally.Likes, &tally.Dislikes)
	if err != nil {
		return data.VoteTally{}, err
	}
	return tally, nil
}

// GetVotesForUser loads every active vote a user has cast, keyed by review.
func (r *repository) GetVotesForUser(userID string) (map[int64]data.VoteType, error) {
	query := `
		SELECT review_id, vote_type
		FROM votes
		WHERE user_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	votes := make(map[int64]data.VoteType)
	for rows.Next() {
		var (
			reviewID int64
			voteType data.VoteType
		)
		err := rows.Scan(&reviewID, &voteType)
		if err != nil {
			return nil, err
		}
		votes[reviewID] = voteType
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return votes, nil
}
