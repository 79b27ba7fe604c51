package data

import (
	"time"
	"unicode/utf8"

	"github.com/tobenna/animon/internal/validator"
)

const MaxReviewTextLength = 500

// Review defines a user's review of one item. ItemCategory is denormalized
// at write time so re-aggregation never re-resolves the uid. Likes and
// Dislikes are derived vote tallies populated on reads.
type Review struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	ItemUID      string    `json:"item_uid"`
	ItemCategory Category  `json:"item_category"`
	Rating       int8      `json:"rating"`
	ReviewText   string    `json:"review_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Likes        int64     `json:"likes"`
	Dislikes     int64     `json:"dislikes"`
	Version      int32     `json:"-"`
}

func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.Rating >= 1, "rating", "must be at least one")
	v.Check(review.Rating <= 10, "rating", "must not be greater than ten")
	v.Check(utf8.RuneCountInString(review.ReviewText) <= MaxReviewTextLength, "review_text", "must not be more than 500 characters long")
}
