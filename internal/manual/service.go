// Package manual implements the non-itemized flow: the group agrees on
// a flat total and everyone throws in money, with the reconciler
// tracking collected against owed.
package manual

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/patunganyuk/patungan/internal/currency"
	"github.com/patunganyuk/patungan/internal/session"
)

// ErrParticipantNotFound is returned when a manual participant ID is unknown.
var ErrParticipantNotFound = errors.New("manual participant not found")

// Service handles manual-collection business logic
type Service struct {
	store session.Store
}

// NewService creates a new manual service with the store injected
func NewService(store session.Store) *Service {
	return &Service{store: store}
}

// SetTotal stores the flat total bill amount for the round
func (s *Service) SetTotal(ctx context.Context, sessionID, raw string) (*session.ManualState, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Manual.TotalBill = ParseAmount(raw)
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return &sess.Manual, nil
}

// AddParticipant adds a person to the manual roster with a zero amount
func (s *Service) AddParticipant(ctx context.Context, sessionID, name string) (*session.ManualParticipant, error) {
	if !session.ValidName(name) {
		return nil, session.ErrEmptyName
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	participant := session.ManualParticipant{
		ID:       uuid.NewString(),
		Name:     name,
		Initials: session.DeriveInitials(name),
	}
	sess.Manual.Participants = append(sess.Manual.Participants, participant)

	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return &participant, nil
}

// RemoveParticipant drops a person from the manual roster
func (s *Service) RemoveParticipant(ctx context.Context, sessionID, participantID string) error {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	found := false
	roster := sess.Manual.Participants[:0]
	for _, p := range sess.Manual.Participants {
		if p.ID == participantID {
			found = true
			continue
		}
		roster = append(roster, p)
	}
	if !found {
		return ErrParticipantNotFound
	}

	sess.Manual.Participants = roster
	return s.store.Update(ctx, sess)
}

// SetAmount records what a participant has contributed so far. The raw
// input is cleaned and parsed; garbage becomes zero, never an error.
func (s *Service) SetAmount(ctx context.Context, sessionID, participantID, raw string) (*session.ManualParticipant, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var updated *session.ManualParticipant
	for i := range sess.Manual.Participants {
		if sess.Manual.Participants[i].ID == participantID {
			sess.Manual.Participants[i].Amount = ParseAmount(raw)
			updated = &sess.Manual.Participants[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrParticipantNotFound
	}

	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return updated, nil
}

// Reconciliation recomputes the collected-vs-owed summary from the
// current session state.
func (s *Service) Reconciliation(ctx context.Context, sessionID string) (*ReconciliationResponse, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	contributions := make([]Contribution, len(sess.Manual.Participants))
	for i, p := range sess.Manual.Participants {
		contributions[i] = Contribution{ParticipantID: p.ID, Amount: p.Amount}
	}

	summary := Reconcile(sess.Manual.TotalBill, contributions)

	resp := &ReconciliationResponse{
		TotalBill:        sess.Manual.TotalBill,
		TotalCollected:   summary.TotalCollected,
		RemainingBalance: summary.RemainingBalance,
		Status:           summary.Status,
		Display:          displayBalance(summary),
		ShareText:        shareText(sess, summary),
	}
	return resp, nil
}

// displayBalance renders the sign-aware balance line. The magnitude is
// always shown positive; the status carries the direction.
func displayBalance(summary Summary) string {
	balance := summary.RemainingBalance
	if balance < 0 {
		balance = -balance
	}
	return currency.FormatRupiah(float64(balance))
}

func shareText(sess *session.Session, summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PatunganYuk! Total Tagihan: %s\n\n", currency.FormatRupiah(float64(sess.Manual.TotalBill)))

	for _, p := range sess.Manual.Participants {
		fmt.Fprintf(&b, "🤑 %s udah setor: %s\n", p.Name, currency.FormatRupiah(float64(p.Amount)))
	}

	switch summary.Status {
	case StatusSettled:
		b.WriteString("\nLUNAS! Mantap jiwa bestie.\n")
	default:
		fmt.Fprintf(&b, "\nSisa: %s\n", displayBalance(summary))
	}

	b.WriteString("\nDibikin pake PatunganYuk! ✨")
	return b.String()
}
