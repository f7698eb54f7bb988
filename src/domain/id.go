package domain

import "github.com/google/uuid"

// IDLength is the length of generated item identifiers.
const IDLength = 8

// NewID returns a short opaque identifier, the prefix of a v4 UUID.
// Not cryptographically strong; collision risk at 8 characters is accepted.
func NewID() string {
	return uuid.NewString()[:IDLength]
}
