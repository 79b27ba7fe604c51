package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobenna/animon/data"
)

func newMockRepository(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestUpsertReview(t *testing.T) {
	t.Run("single statement insert-or-overwrite", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		createdAt := time.Now()
		mock.ExpectQuery(`INSERT INTO reviews .+ ON CONFLICT \(user_id, item_uid\) DO UPDATE`).
			WithArgs("u1", "123A", data.CategoryAnime, int8(8), "great").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "version"}).AddRow(int64(42), createdAt, int32(1)))

		review := &data.Review{
			UserID:       "u1",
			ItemUID:      "123A",
			ItemCategory: data.CategoryAnime,
			Rating:       8,
			ReviewText:   "great",
		}
		err := repo.UpsertReview(review)
		require.NoError(t, err)
		assert.Equal(t, int64(42), review.ID)
		assert.Equal(t, int32(1), review.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overwrite bumps version", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`INSERT INTO reviews`).
			WithArgs("u1", "123A", data.CategoryAnime, int8(6), "changed my mind").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "version"}).AddRow(int64(42), time.Now(), int32(2)))

		review := &data.Review{
			UserID:       "u1",
			ItemUID:      "123A",
			ItemCategory: data.CategoryAnime,
			Rating:       6,
			ReviewText:   "changed my mind",
		}
		err := repo.UpsertReview(review)
		require.NoError(t, err)
		assert.Equal(t, int32(2), review.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetReview(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		rows := sqlmock.NewRows([]string{"id", "user_id", "item_uid", "item_category", "rating", "review_text", "created_at", "version"}).
			AddRow(int64(7), "u2", "88M", data.CategoryManga, int8(9), "", time.Now(), int32(1))
		mock.ExpectQuery(`SELECT id, user_id, item_uid, item_category, rating, review_text, created_at, version`).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		review, err := repo.GetReview(7)
		require.NoError(t, err)
		assert.Equal(t, "u2", review.UserID)
		assert.Equal(t, data.CategoryManga, review.ItemCategory)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing review", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT id, user_id, item_uid`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetReview(99)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("non-positive id short-circuits", func(t *testing.T) {
		repo, _ := newMockRepository(t)
		_, err := repo.GetReview(0)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	t.Run("deletes votes and review in one transaction", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM votes WHERE review_id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM reviews WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteReview(7)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing review rolls back", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM votes WHERE review_id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM reviews WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteReview(99)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetAllReviews(t *testing.T) {
	filters := data.Filters{
		Page:         1,
		PageSize:     10,
		Sort:         "-created_at",
		SortSafeList: []string{"created_at", "rating", "-created_at", "-rating"},
	}

	t.Run("returns reviews with vote tallies and metadata", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		rows := sqlmock.NewRows([]string{"count", "id", "user_id", "item_uid", "item_category", "rating", "review_text", "created_at", "version", "likes", "dislikes"}).
			AddRow(2, int64(2), "u2", "123A", data.CategoryAnime, int8(6), "", time.Now(), int32(1), int64(0), int64(1)).
			AddRow(2, int64(1), "u1", "123A", data.CategoryAnime, int8(8), "great", time.Now(), int32(1), int64(3), int64(0))
		mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
			WithArgs("123A", data.CategoryAnime, 10, 0).
			WillReturnRows(rows)

		reviews, metadata, err := repo.GetAllReviews("123A", data.CategoryAnime, filters)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, int64(3), reviews[1].Likes)
		assert.Equal(t, int64(1), reviews[0].Dislikes)
		assert.Equal(t, 2, metadata.TotalRecords)
		assert.Equal(t, 1, metadata.LastPage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no reviews yields empty slice and empty metadata", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
			WithArgs("9N", data.CategoryNovel, 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{"count", "id", "user_id", "item_uid", "item_category", "rating", "review_text", "created_at", "version", "likes", "dislikes"}))

		reviews, metadata, err := repo.GetAllReviews("9N", data.CategoryNovel, filters)
		require.NoError(t, err)
		assert.Empty(t, reviews)
		assert.Equal(t, data.Metadata{}, metadata)
	})
}
