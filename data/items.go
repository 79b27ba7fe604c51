package data

import (
	"encoding/json"
	"time"
)

// Item defines one piece of cataloged content. Descriptive metadata (poster,
// synopsis, cast and so on) is category-specific, owned by the catalog
// management pipeline and passes through this service untouched as Details.
// Rating and ReviewCount are derived fields written only by re-aggregation.
type Item struct {
	UID         string          `json:"uid"`
	Category    Category        `json:"category"`
	Rating      float64         `json:"rating"`
	ReviewCount int32           `json:"review_count"`
	CreatedAt   time.Time       `json:"created_at"`
	Details     json.RawMessage `json:"details,omitempty"`
	Version     int32           `json:"-"`
}
