package repositories

import "errors"

// Store-level failures, translated from the ORM by the implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
