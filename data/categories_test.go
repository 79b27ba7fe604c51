package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobenna/animon/data"
)

func TestResolvePartition(t *testing.T) {
	t.Run("resolves anime from uppercase suffix", func(t *testing.T) {
		partition, err := data.ResolvePartition("123A")
		require.NoError(t, err)
		assert.Equal(t, data.CategoryAnime, partition.Category)
		assert.Equal(t, "anime_items", partition.Table)
	})

	t.Run("suffix match is case-insensitive", func(t *testing.T) {
		partition, err := data.ResolvePartition("123a")
		require.NoError(t, err)
		assert.Equal(t, data.CategoryAnime, partition.Category)
	})

	t.Run("resolves manga", func(t *testing.T) {
		partition, err := data.ResolvePartition("88M")
		require.NoError(t, err)
		assert.Equal(t, data.CategoryManga, partition.Category)
		assert.Equal(t, "manga_items", partition.Table)
	})

	t.Run("resolves novel", func(t *testing.T) {
		partition, err := data.ResolvePartition("9n")
		require.NoError(t, err)
		assert.Equal(t, data.CategoryNovel, partition.Category)
		assert.Equal(t, "novel_items", partition.Table)
	})

	t.Run("unknown suffix fails", func(t *testing.T) {
		_, err := data.ResolvePartition("77Z")
		assert.ErrorIs(t, err, data.ErrUnknownCategory)
	})

	t.Run("empty uid fails", func(t *testing.T) {
		_, err := data.ResolvePartition("")
		assert.ErrorIs(t, err, data.ErrUnknownCategory)
	})

	t.Run("single character uid resolves on itself", func(t *testing.T) {
		partition, err := data.ResolvePartition("m")
		require.NoError(t, err)
		assert.Equal(t, data.CategoryManga, partition.Category)
	})
}

func TestPartitionFor(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		partition, err := data.PartitionFor(data.CategoryNovel)
		require.NoError(t, err)
		assert.Equal(t, "novel_items", partition.Table)
	})

	t.Run("unknown category fails", func(t *testing.T) {
		_, err := data.PartitionFor(data.Category("podcast"))
		assert.ErrorIs(t, err, data.ErrUnknownCategory)
	})
}
