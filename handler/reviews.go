package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tobenna/animon/data/dto"
	"github.com/tobenna/animon/internal/validator"
	"github.com/tobenna/animon/service"
)

// SubmitReview godoc
// @Summary Submit or overwrite a review for an item
// @Description This endpoint records the caller's review of an item. Submitting again overwrites the previous review in place.
// @Tags reviews
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param itemUid path string true "UID of the item being reviewed"
// @Param body body dto.SubmitReviewRequestBody true "JSON payload required to submit a review"
// @Success 200 {object} data.Review
// @Success 201 {object} data.Review
// @Failure 400
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/items/{itemUid}/reviews [put]
func (h *Handler) submitReviewHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.SubmitReviewRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	itemUID := h.readUIDParam(r, "itemUid")
	user := h.contextGetUser(r)
	review, err := h.service.SubmitReview(user.ID, itemUID, requestBody.Rating, requestBody.ReviewText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCategory):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	// Version 1 means the upsert created a fresh row rather than
	// overwriting an earlier submission.
	status := http.StatusOK
	headers := make(http.Header)
	if review.Version == 1 {
		status = http.StatusCreated
		headers.Set("Location", fmt.Sprintf("/v1/items/%s/reviews", itemUID))
	}
	err = h.encodeJSON(w, status, envelope{"review": review}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteReview godoc
// @Summary Delete a review
// @Description This endpoint deletes one of the caller's own reviews along with all votes cast on it
// @Tags reviews
// @Produce json
// @Param token header string true "Bearer token"
// @Param reviewId path int true "ID of review to delete"
// @Success 200
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/reviews/{reviewId} [delete]
func (h *Handler) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	err = h.service.DeleteReview(reviewID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "review deleted successfully"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListReviews godoc
// @Summary List all reviews for an item
// @Description This endpoint lists an item's reviews, newest first, with live like/dislike tallies
// @Tags reviews
// @Produce json
// @Param itemUid path string true "UID of the item"
// @Param page query int false "Query string param for pagination (min 1)"
// @Param page_size query int false "Query string param for pagination (max 100)"
// @Param sort query string false "Sort by ascending or descending order. Asc: created_at, rating. Desc: -created_at, -rating"
// @Success 200 {array} data.Review
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /v1/items/{itemUid}/reviews [get]
func (h *Handler) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	itemUID := h.readUIDParam(r, "itemUid")
	var qsInput dto.QsListReviews
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "-created_at")
	qsInput.Filters.SortSafeList = []string{"created_at", "rating", "-created_at", "-rating"}
	reviews, metadata, err := h.service.ListReviews(itemUID, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCategory):
			h.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reviews": reviews, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
