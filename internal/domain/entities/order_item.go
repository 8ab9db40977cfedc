package entities

import (
	"encoding/json"
	"time"
)

// Quantity bounds enforced at every mutation point. Values outside the range
// are clamped, never rejected and never persisted out of range.
const (
	MinQuantity = 1
	MaxQuantity = 999
)

// ParamMap is the parametric state captured from the rendering surface.
//
// The surface owns the schema; this service only stores, displays and
// serializes it. Keys and values are never interpreted here.
type ParamMap map[string]json.RawMessage

// OrderItem is one configured part instance in the order sheet.
//
// Storage model:
//   - sqlite: order_items(id PK, payload JSON blob, ts) with a non-unique ts index
//   - dynamodb: PK: id, attribute ts for insertion ordering
//
// Parameters and Thumbnail come from the rendering surface and are opaque:
// both may be absent when the surface did not answer in time.
type OrderItem struct {
	ID         string    `json:"id"`
	Key        string    `json:"key"`
	Label      string    `json:"label"`
	URL        string    `json:"url"`
	Material   string    `json:"material"`
	Quantity   int       `json:"quantity"`
	Parameters ParamMap  `json:"parameters"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// ClampQuantity forces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
