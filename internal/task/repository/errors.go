package repository

import "errors"

// Store failure taxonomy. Backends wrap these sentinels around the
// underlying cause with %w so callers can match with errors.Is while the
// original error stays visible.
var (
	ErrFailedToConnect = errors.New("failed to connect to store")
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToDelete  = errors.New("failed to delete record")
)
