package engine

import "github.com/google/uuid"

// generateID creates a random UUID for history entries.
func generateID() string {
	return uuid.NewString()
}
