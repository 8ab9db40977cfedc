package repository

import "errors"

var (
	ErrDuplicateItemID = errors.New("item id already exists")
	ErrItemNotFound    = errors.New("item not found")
)
