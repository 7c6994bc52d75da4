// Package session holds the authenticated-user state of the app and keeps it
// consistent with device storage.
//
// A Store is created once per process. LoadUser restores a persisted session
// at startup; Login and Register establish a new one through the backend;
// Logout ends it. The store never holds a user without a token or a token
// without a user, in memory or on disk.
//
// The store does not watch storage. When the API client clears a rejected
// session after a 401, the in-memory state keeps the old credentials until
// Revalidate, Logout or the next LoadUser.
package session
