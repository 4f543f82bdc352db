package service

import "errors"

// Failure categories surfaced by the exam engine. Each is terminal for the
// current call and maps to its own HTTP status at the transport layer.
var (
	ErrEmptyBank       = errors.New("question bank is empty")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("exam belongs to another user")
	ErrIndexOutOfRange = errors.New("question index out of range")
)
