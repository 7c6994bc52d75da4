// Package storage is the device-local key/value store shared by the session
// store and the API client.
//
// Two implementations satisfy Storage:
//   - SQLiteStorage: durable, one row per key in the kv_store table of a
//     local SQLite file (pure-Go driver), schema applied by Open through
//     embedded goose migrations.
//   - MemoryStorage: process-local map, for ephemeral runs and tests.
//
// Multi-key writes and removals are atomic, which is what keeps the session
// token and the cached user record in step: they are written together and
// cleared together.
//
// Get returns (nil, nil) for an absent key; callers treat that as "not set".
package storage
