package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered ids for appointments and trace ids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID v7, falling back to a random v4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
