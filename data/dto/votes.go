package dto

import "github.com/tobenna/animon/data"

// CastVoteRequestBody defines a request body for CastVote service.
type CastVoteRequestBody struct {
	VoteType data.VoteType `json:"vote_type"`
}
