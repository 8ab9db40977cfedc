package request

import "strings"

// AddItemRequest is the add-to-cart payload: the selected part's catalog
// metadata plus the user's choices from the quantity prompt.
type AddItemRequest struct {
	Key      string `json:"key" binding:"required"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Material string `json:"material" binding:"required"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

func (r AddItemRequest) ResolveKey() string {
	return strings.TrimSpace(r.Key)
}

func (r AddItemRequest) ResolveLabel() string {
	if v := strings.TrimSpace(r.Label); v != "" {
		return v
	}
	return r.ResolveKey()
}

// NameRequest carries a session-label update (project or zone name). Values
// persist as given; whitespace-only input is stored as the empty string.
type NameRequest struct {
	Name string `json:"name"`
}

func (r NameRequest) ResolveName() string {
	if strings.TrimSpace(r.Name) == "" {
		return ""
	}
	return r.Name
}
