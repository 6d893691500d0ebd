// Package sessionstore holds the durable key-value mirrors of the session.
package sessionstore

import "context"

const (
	KeyToken  = "token"
	KeyRole   = "role"
	KeyUserID = "userId"
)

// SessionKeys are written together on login and removed together on logout.
var SessionKeys = []string{KeyToken, KeyRole, KeyUserID}

type KV struct {
	Key   string
	Value string
}

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// MultiSet writes all pairs as one batch.
	MultiSet(ctx context.Context, pairs []KV) error
	MultiRemove(ctx context.Context, keys ...string) error
}

// TokenReader is the subset the HTTP interceptor needs.
type TokenReader interface {
	Get(ctx context.Context, key string) (string, bool, error)
}
