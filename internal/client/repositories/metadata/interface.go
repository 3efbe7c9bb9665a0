// Package metadata is a small string key/value store backed by the client's
// local database. The session layer keeps the bearer token here.
package metadata

import "context"

type Repository interface {
	// Get reports ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Put inserts or overwrites key.
	Put(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
