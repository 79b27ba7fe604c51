package handler

import (
	"errors"
	"net/http"

	"github.com/tobenna/animon/data/dto"
	"github.com/tobenna/animon/service"
)

// CastVote godoc
// @Summary Cast, toggle or replace a vote on a review
// @Description This endpoint applies the three-way vote toggle: a fresh vote is applied, an identical vote is removed, an opposite vote is replaced
// @Tags votes
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param reviewId path int true "ID of review to vote on"
// @Param body body dto.CastVoteRequestBody true "JSON payload required to cast a vote"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/reviews/{reviewId}/vote [post]
func (h *Handler) castVoteHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CastVoteRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	outcome, err := h.service.CastVote(user.ID, reviewID, requestBody.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrSelfVote):
			h.selfVoteResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	tally, err := h.service.GetVoteTally(reviewID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"vote": outcome, "likes": tally.Likes, "dislikes": tally.Dislikes}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListUserVotes godoc
// @Summary List the caller's active votes
// @Description This endpoint returns a mapping of review id to vote type for every vote the caller currently has in effect
// @Tags votes
// @Produce json
// @Param token header string true "Bearer token"
// @Success 200
// @Failure 500
// @Router /v1/users/votes [get]
func (h *Handler) listUserVotesHandler(w http.ResponseWriter, r *http.Request) {
	user := h.contextGetUser(r)
	votes, err := h.service.ListUserVotes(user.ID)
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"votes": votes}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
