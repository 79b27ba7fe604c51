package data

import (
	"time"

	"github.com/tobenna/animon/internal/validator"
)

// VoteType is a user's reaction to a review.
type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

// VoteOutcome reports what a cast actually did: a fresh vote was applied, an
// identical vote was removed (toggle-off), or an opposite vote was replaced
// in place.
type VoteOutcome string

const (
	VoteApplied  VoteOutcome = "applied"
	VoteRemoved  VoteOutcome = "removed"
	VoteReplaced VoteOutcome = "replaced"
)

// Vote defines a user's like or dislike of one review. At most one vote
// exists per (review, user) pair; the pair is the storage key.
type Vote struct {
	ReviewID  int64     `json:"review_id"`
	UserID    string    `json:"user_id"`
	VoteType  VoteType  `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteTally holds the per-review count of votes grouped by type.
type VoteTally struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

func ValidateVoteType(v *validator.Validator, voteType VoteType) {
	v.Check(validator.PermittedValue(voteType, VoteLike, VoteDislike), "vote_type", "must be either like or dislike")
}
