package repository

import (
	"encoding/json"

	"kanalsepet/internal/domain/entities"
)

// Items round-trip through their JSON wire form in both transactional
// backends, so opaque parameters and thumbnails survive verbatim.

func marshalItemPayload(item entities.OrderItem) ([]byte, error) {
	return json.Marshal(item)
}

func unmarshalItemPayload(payload []byte) (entities.OrderItem, error) {
	var item entities.OrderItem
	if err := json.Unmarshal(payload, &item); err != nil {
		return entities.OrderItem{}, err
	}
	return item, nil
}
