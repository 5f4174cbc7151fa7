package services

import "errors"

// ErrTaskNotFound is returned both for missing tasks and for tasks owned by
// someone else, so callers cannot probe for other users' task ids.
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidInput       = errors.New("invalid input")
)
