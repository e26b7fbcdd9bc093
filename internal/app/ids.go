package app

import (
	"time"

	"github.com/google/uuid"
)

// Option customises a Sessions store.
type Option func(*Sessions)

// WithIDFunc replaces the session ID generator.
func WithIDFunc(f func() string) Option {
	return func(s *Sessions) {
		if f != nil {
			s.newID = f
		}
	}
}

// WithClock replaces the time source used for Created/Updated and eviction.
func WithClock(now func() time.Time) Option {
	return func(s *Sessions) {
		if now != nil {
			s.now = now
		}
	}
}

// newSessionID generates a random UUIDv4 string.
func newSessionID() string { return uuid.NewString() }
