package storage

import "github.com/google/uuid"

// newID mints record identifiers. Stores mint IDs themselves so callers
// never have to supply one for CreateHabit.
func newID() string {
	return uuid.New().String()
}
