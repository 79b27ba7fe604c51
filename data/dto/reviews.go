package dto

import "github.com/tobenna/animon/data"

// SubmitReviewRequestBody defines a request body for SubmitReview service.
type SubmitReviewRequestBody struct {
	Rating     int8   `json:"rating"`
	ReviewText string `json:"review_text"`
}

// QsListReviews defines the query strings used for listing reviews.
type QsListReviews struct {
	Filters data.Filters
}
