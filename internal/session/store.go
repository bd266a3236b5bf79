package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when no session has the given ID.
var ErrNotFound = errors.New("session not found")

// Store defines session persistence for the lifetime of a round.
// The application is deliberately client-local with no backing
// database, so the only real implementation is in-memory, but the
// abstraction keeps the services storage-agnostic.
type Store interface {
	// Create persists a new session. The session ID must be set.
	Create(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Update replaces an existing session, or ErrNotFound.
	Update(ctx context.Context, s *Session) error

	// Delete removes a session by ID, or ErrNotFound.
	Delete(ctx context.Context, id string) error
}
