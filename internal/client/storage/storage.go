package storage

import "context"

// Session entry keys. They match the keys used by earlier releases of the
// app and must not change.
const (
	TokenKey = "@auth_token"
	UserKey  = "@user_data"
)

// SessionKeys lists the entries that make up a persisted session.
var SessionKeys = []string{TokenKey, UserKey}

type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, entries map[string][]byte) error
	Remove(ctx context.Context, keys ...string) error
}
