// Package repository persists the task collection as a single JSON document
// in a key-value byte store.
package repository

import "context"

// DefaultKey is the key the task collection is stored under.
const DefaultKey = "dsa-tasks"

// KVStore is a durable map from string keys to byte values.
//
// Get returns a NotFound app error when the key is absent.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
