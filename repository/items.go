package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tobenna/animon/data"
)

type items interface {
	GetItem(partition data.Partition, uid string) (*data.Item, error)
	RecomputeItemRating(partition data.Partition, itemUID string) (float64, int32, error)
}

// GetItem retrieves an item record from its category partition.
func (r *repository) GetItem(partition data.Partition, uid string) (*data.Item, error) {
	query := fmt.Sprintf(`
		SELECT uid, rating, review_count, created_at, details, version
		FROM %s
		WHERE uid = $1`, partition.Table)
	item := data.Item{Category: partition.Category}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, uid).Scan(
		&item.UID,
		&item.Rating,
		&item.ReviewCount,
		&item.CreatedAt,
		&item.Details,
		&item.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &item, nil
}

// RecomputeItemRating recalculates an item's aggregate rating and review
// count from its current review set and writes both onto the item row.
// Reviews are matched on item_uid and item_category; the denormalized
// category column is authoritative. Computing and writing inside one
// statement keeps the read snapshot and the write together, so a concurrent
// recompute cannot slide a stale average under a newer one. Running the
// statement again with no intervening review mutation writes the same
// values.
func (r *repository) RecomputeItemRating(partition data.Partition, itemUID string) (float64, int32, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET rating = (
			SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0)
			FROM reviews
			WHERE item_uid = $1 AND item_category = $2
		), review_count = (
			SELECT COUNT(*)
			FROM reviews
			WHERE item_uid = $1 AND item_category = $2
		), version = version + 1
		WHERE uid = $1
		RETURNING rating, review_count`, partition.Table)
	var (
		rating      float64
		reviewCount int32
	)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, itemUID, partition.Category).Scan(&rating, &reviewCount)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, 0, ErrRecordNotFound
		default:
			return 0, 0, err
		}
	}
	return rating, reviewCount, nil
}
