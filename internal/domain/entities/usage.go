package entities

// UsageEstimate is the advisory storage-usage report of a backend. Backends
// that cannot report usage return a zeroed estimate; nothing gates on it.
type UsageEstimate struct {
	UsedBytes  int64 `json:"used_bytes"`
	QuotaBytes int64 `json:"quota_bytes"`
	ItemCount  int   `json:"item_count"`
}
