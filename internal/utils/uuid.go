package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for users, wallets, tokens
// and request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewTraceID returns a fresh trace id for the X-Trace-ID header.
func NewTraceID() string {
	return NewUUIDGenerator().Generate()
}
