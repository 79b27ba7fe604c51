package data

import (
	"errors"
	"strings"
)

// Category identifies the kind of catalog item. Each category keeps its
// items in a separate storage partition, so category also selects the table
// an item lives in.
type Category string

const (
	CategoryAnime Category = "anime"
	CategoryManga Category = "manga"
	CategoryNovel Category = "novel"
)

var ErrUnknownCategory = errors.New("unknown category")

// Partition is the storage location for one category of items.
type Partition struct {
	Category Category
	Table    string
}

// partitions maps a category discriminant (the final character of an item
// uid, upper-cased) to the partition for that category. Items of different
// categories never collide even when the rest of their identifiers match.
var partitions = map[byte]Partition{
	'A': {Category: CategoryAnime, Table: "anime_items"},
	'M': {Category: CategoryManga, Table: "manga_items"},
	'N': {Category: CategoryNovel, Table: "novel_items"},
}

// ResolvePartition maps an item uid to the partition holding that item. The
// final character of the uid (case-insensitive) is the category
// discriminant; callers must not assume any other structure in the uid.
func ResolvePartition(uid string) (Partition, error) {
	if uid == "" {
		return Partition{}, ErrUnknownCategory
	}
	suffix := strings.ToUpper(uid[len(uid)-1:])
	partition, ok := partitions[suffix[0]]
	if !ok {
		return Partition{}, ErrUnknownCategory
	}
	return partition, nil
}

// PartitionFor returns the partition for an already-resolved category.
func PartitionFor(category Category) (Partition, error) {
	for _, partition := range partitions {
		if partition.Category == category {
			return partition, nil
		}
	}
	return Partition{}, ErrUnknownCategory
}
