package store

import "errors"

// Sentinel errors for reminder resolution and mutation.
var (
	// ErrInvalidFilename indicates a reference that can never name a reminder.
	ErrInvalidFilename = errors.New("store: invalid reminder filename")

	// ErrNotFound indicates a reference that does not resolve to an existing reminder.
	ErrNotFound = errors.New("store: reminder not found")

	// ErrAlreadyExists indicates an explicit name that is already taken.
	ErrAlreadyExists = errors.New("store: reminder already exists")

	// ErrIndexOutOfRange indicates a numeric reference past the end of the listing.
	ErrIndexOutOfRange = errors.New("store: list index out of range")
)
