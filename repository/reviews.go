package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tobenna/animon/data"
)

type reviews interface {
	UpsertReview(review *data.Review) error
	GetReview(reviewID int64) (*data.Review, error)
	DeleteReview(reviewID int64) error
	GetAllReviews(itemUID string, category data.Category, filters data.Filters) ([]*data.Review, data.Metadata, error)
}

// UpsertReview writes a user's review of an item. The (user_id, item_uid)
// unique constraint makes this a single atomic operation: a second
// submission by the same user for the same item overwrites the existing row
// in place, never creates another one, even under concurrent submissions.
func (r *repository) UpsertReview(review *data.Review) error {
	query := `
		INSERT INTO reviews (user_id, item_uid, item_category, rating, review_text)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, item_uid) DO UPDATE
		SET rating = EXCLUDED.rating, review_text = EXCLUDED.review_text, item_category = EXCLUDED.item_category, version = reviews.version + 1
		RETURNING id, created_at, version`
	args := []interface{}{review.UserID, review.ItemUID, review.ItemCategory, review.Rating, review.ReviewText}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt, &review.Version)
}

// GetReview retrieves a single review record.
func (r *repository) GetReview(reviewID int64) (*data.Review, error) {
	if reviewID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, user_id, item_uid, item_category, rating, review_text, created_at, version
		FROM reviews
		WHERE id = $1`
	var review data.Review
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(
		&review.ID,
		&review.UserID,
		&review.ItemUID,
		&review.ItemCategory,
		&review.Rating,
		&review.ReviewText,
		&review.CreatedAt,
		&review.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &review, nil
}

// DeleteReview deletes a review record along with every vote cast on it.
// Both deletes commit or neither does.
func (r *repository) DeleteReview(reviewID int64) error {
	if reviewID < 1 {
		return ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, `DELETE FROM votes WHERE review_id = $1`, reviewID)
	if err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return tx.Commit()
}

// GetAllReviews retrieves a paginated list of the reviews for an item,
// newest first by default, with each review's live like and dislike tallies.
// Reviews are matched on both uid and category.
func (r *repository) GetAllReviews(itemUID string, category data.Category, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), reviews.id, reviews.user_id, reviews.item_uid, reviews.item_category, reviews.rating, reviews.review_text, reviews.created_at, reviews.version,
			COUNT(votes.vote_type) FILTER (WHERE votes.vote_type = 'like') AS likes,
			COUNT(votes.vote_type) FILTER (WHERE votes.vote_type = 'dislike') AS dislikes
		FROM reviews
		LEFT JOIN votes ON votes.review_id = reviews.id
		WHERE reviews.item_uid = $1 AND reviews.item_category = $2
		GROUP BY reviews.id
		ORDER BY %s %s, id DESC
		LIMIT $3 OFFSET $4`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{itemUID, category, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	reviews := []*data.Review{}
	for rows.Next() {
		var review data.Review
		err := rows.Scan(
			&totalRecords,
			&review.ID,
			&review.UserID,
			&review.ItemUID,
			&review.ItemCategory,
			&review.Rating,
			&review.ReviewText,
			&review.CreatedAt,
			&review.Version,
			&review.Likes,
			&review.Dislikes,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		reviews = append(reviews, &review)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return reviews, metadata, nil
}
