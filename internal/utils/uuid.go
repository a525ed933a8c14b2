package utils

import "github.com/google/uuid"

// UUIDGenerator mints record identifiers. UUIDv7 is preferred because its
// time-ordered prefix keeps the record collection roughly insertion-sorted.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 if the
// system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
