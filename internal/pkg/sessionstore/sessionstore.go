package sessionstore

import "errors"

// ErrEmptySlot is returned by Load when no session has been saved or the
// slot was cleared.
var ErrEmptySlot = errors.New("session slot is empty")

// Store is the persistence boundary for the single shared session slot.
// Implementations hold the raw serialized session; interpretation (and
// eviction of malformed or expired content) is the auth service's job.
type Store interface {
	// Load returns the stored session payload, or ErrEmptySlot.
	Load() ([]byte, error)

	// Save overwrites the slot unconditionally.
	Save(data []byte) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear() error
}
