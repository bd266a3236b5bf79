// Package memory provides the in-memory session store. Sessions are
// browser-local state with no cross-session sharing, so a mutex-guarded
// map is the whole persistence layer.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patunganyuk/patungan/internal/session"
)

// Store keeps sessions in a map guarded by a RWMutex. Snapshots are
// deep-copied on the way in and out so callers can mutate freely
// without racing each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*session.Session),
	}
}

// Create persists a new session snapshot.
func (s *Store) Create(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = clone(sess)
	return nil
}

// Get returns a copy of the session with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return clone(sess), nil
}

// Update replaces an existing session snapshot.
func (s *Store) Update(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; !ok {
		return session.ErrNotFound
	}

	updated := clone(sess)
	updated.UpdatedAt = time.Now().UTC()
	s.sessions[sess.ID] = updated
	return nil
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return session.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions are live.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// clone deep-copies a session so stored state never aliases caller state.
func clone(src *session.Session) *session.Session {
	dst := *src

	if src.Bill != nil {
		bill := *src.Bill
		bill.Items = make([]session.Item, len(src.Bill.Items))
		for i, item := range src.Bill.Items {
			item.AssignedTo = append([]string(nil), item.AssignedTo...)
			bill.Items[i] = item
		}
		dst.Bill = &bill
	}

	dst.Participants = append([]session.Participant(nil), src.Participants...)
	dst.Manual.Participants = append([]session.ManualParticipant(nil), src.Manual.Participants...)

	return &dst
}
