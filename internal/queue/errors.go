package queue

import "errors"

var (
	ErrNotFound          = errors.New("queue entry not found")
	ErrDuplicateID       = errors.New("queue entry id already used")
	ErrAlreadyQueued     = errors.New("appointment already queued")
	ErrInvalidEntry      = errors.New("invalid queue entry")
	ErrInvalidTransition = errors.New("invalid status transition")
)
