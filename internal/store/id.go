package store

import "github.com/google/uuid"

// IDGenerator returns a candidate id for a new task. The store retries when
// a candidate collides with an existing id.
type IDGenerator func() string

// NewID returns a UUIDv7 string. The leading bits are a millisecond
// timestamp and the rest is random, so ids sort by creation time.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
