package entities

import (
	"fmt"
	"sort"
	"strings"
)

// OrderSheet is the whole cart: session-level labels plus the ordered list of
// line items. Insertion order is display order; nothing re-sorts it.
//
// The in-memory sheet held by the order usecase is the single source of truth
// during a session. The persistent store is a durability mirror read only at
// session load.
type OrderSheet struct {
	ProjectName string      `json:"project_name"`
	ZoneName    string      `json:"zone_name"`
	Items       []OrderItem `json:"items"`
}

// Summary is derived from the sheet on every read, never stored.
type Summary struct {
	ItemCount     int `json:"item_count"`
	TotalQuantity int `json:"total_quantity"`
}

func (s OrderSheet) Summary() Summary {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return Summary{ItemCount: len(s.Items), TotalQuantity: total}
}

// BadgeText renders the cart badge, e.g. "2 parça, 3 adet".
func (s OrderSheet) BadgeText() string {
	sum := s.Summary()
	return fmt.Sprintf("%d parça, %d adet", sum.ItemCount, sum.TotalQuantity)
}

// ShareText renders the shareable order summary:
//
//	Project: <project> | Zone: <zone>
//	1) <label> | Material: <material> | Qty: <quantity>
//	...
//
// Items with captured parameters get a serialized fragment appended, with keys
// sorted for a stable rendering.
func (s OrderSheet) ShareText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s | Zone: %s", s.ProjectName, s.ZoneName)
	for i, it := range s.Items {
		fmt.Fprintf(&b, "\n%d) %s | Material: %s | Qty: %d", i+1, it.Label, it.Material, it.Quantity)
		if len(it.Parameters) > 0 {
			b.WriteString(" | Params: ")
			b.WriteString(serializeParams(it.Parameters))
		}
	}
	return b.String()
}

func serializeParams(p ParamMap) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strings.Trim(string(p[k]), `"`))
	}
	return strings.Join(parts, "; ")
}
