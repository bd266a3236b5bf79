package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyName           = errors.New("participant name must not be empty")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Service handles session lifecycle and the participant roster
type Service struct {
	store Store
}

// NewService creates a new session service with the store injected
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create starts a fresh session with an empty roster and no bill
func (s *Service) Create(ctx context.Context) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:           uuid.NewString(),
		Participants: []Participant{},
		Manual: ManualState{
			Participants: []ManualParticipant{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get retrieves the full session state
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

// Delete discards a session entirely (the "start over" action)
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// AddParticipant adds a person to the roster. The name must be
// non-empty after trimming; initials are derived from it.
func (s *Service) AddParticipant(ctx context.Context, sessionID, name string) (*Participant, error) {
	if !ValidName(name) {
		return nil, ErrEmptyName
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	participant := Participant{
		ID:       uuid.NewString(),
		Name:     name,
		Initials: DeriveInitials(name),
	}
	sess.Participants = append(sess.Participants, participant)

	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return &participant, nil
}

// RemoveParticipant drops a person from the roster and strips their ID
// from every item's assignee set, so the split never sees a dangling
// assignment.
func (s *Service) RemoveParticipant(ctx context.Context, sessionID, participantID string) error {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	found := false
	roster := sess.Participants[:0]
	for _, p := range sess.Participants {
		if p.ID == participantID {
			found = true
			continue
		}
		roster = append(roster, p)
	}
	if !found {
		return ErrParticipantNotFound
	}
	sess.Participants = roster

	if sess.Bill != nil {
		for i, item := range sess.Bill.Items {
			assigned := item.AssignedTo[:0]
			for _, id := range item.AssignedTo {
				if id != participantID {
					assigned = append(assigned, id)
				}
			}
			sess.Bill.Items[i].AssignedTo = assigned
		}
	}

	return s.store.Update(ctx, sess)
}

// SetBank stores transfer instructions to include in share text
func (s *Service) SetBank(ctx context.Context, sessionID string, bank BankDetails) error {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	sess.Bank = bank
	return s.store.Update(ctx, sess)
}
