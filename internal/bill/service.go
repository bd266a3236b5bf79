// Package bill implements the itemized splitting flow: entering and
// editing line items, assigning them to participants, and computing
// the per-participant settlement.
package bill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/patunganyuk/patungan/internal/bill/split"
	"github.com/patunganyuk/patungan/internal/currency"
	"github.com/patunganyuk/patungan/internal/session"
)

// Common errors
var (
	ErrNoBill             = errors.New("no bill in this session yet")
	ErrNoItems            = errors.New("at least one item is required")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidItem        = errors.New("item name, quantity, and price must all be filled in")
	ErrUnknownParticipant = errors.New("assignee is not a session participant")
)

// Service handles bill business logic
type Service struct {
	store session.Store
}

// NewService creates a new bill service with the store injected
func NewService(store session.Store) *Service {
	return &Service{store: store}
}

// validateEntry is the manual-entry gate: bad lines never reach the
// bill, so the settlement core only ever sees well-formed items.
func validateEntry(entry ItemEntry) error {
	if strings.TrimSpace(entry.Name) == "" || entry.Quantity <= 0 || entry.UnitPrice <= 0 {
		return ErrInvalidItem
	}
	return nil
}

func newItem(entry ItemEntry) session.Item {
	return session.Item{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(entry.Name),
		Quantity:   entry.Quantity,
		Price:      float64(entry.Quantity) * entry.UnitPrice,
		AssignedTo: []string{},
	}
}

// SetBill starts a round from manually entered items, replacing any
// previous bill. Subtotal and total are derived from the item sum;
// tax is whatever the request states, zero by default.
func (s *Service) SetBill(ctx context.Context, sessionID string, req *SetBillRequest) (*session.Bill, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	items := make([]session.Item, len(req.Items))
	for i, entry := range req.Items {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		items[i] = newItem(entry)
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Bill = session.NewBill(items, 0, req.Tax, 0)
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Bill, nil
}

// AddItem appends a line item to the current bill and refreshes totals
func (s *Service) AddItem(ctx context.Context, sessionID string, entry ItemEntry) (*session.Item, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Bill == nil {
		return nil, ErrNoBill
	}

	item := newItem(entry)
	sess.Bill.Items = append(sess.Bill.Items, item)
	sess.Bill.RecalculateTotals()

	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem edits a line item's name, quantity, or price. Totals and
// downstream shares recompute from the new state; nothing is cached.
func (s *Service) UpdateItem(ctx context.Context, sessionID, itemID string, entry ItemEntry) (*session.Item, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Bill == nil {
		return nil, ErrNoBill
	}

	var updated *session.Item
	for i := range sess.Bill.Items {
		if sess.Bill.Items[i].ID == itemID {
			sess.Bill.Items[i].Name = strings.TrimSpace(entry.Name)
			sess.Bill.Items[i].Quantity = entry.Quantity
			sess.Bill.Items[i].Price = float64(entry.Quantity) * entry.UnitPrice
			updated = &sess.Bill.Items[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}

	sess.Bill.RecalculateTotals()

	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItem deletes a line item and refreshes totals
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Bill == nil {
		return ErrNoBill
	}

	found := false
	items := sess.Bill.Items[:0]
	for _, item := range sess.Bill.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return ErrItemNotFound
	}

	sess.Bill.Items = items
	sess.Bill.RecalculateTotals()
	return s.store.Update(ctx, sess)
}

// SetAssignees replaces an item's assignee set. Every ID must be in
// the roster; with All set the full roster is assigned.
func (s *Service) SetAssignees(ctx context.Context, sessionID, itemID string, req *SetAssigneesRequest) (*session.Item, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Bill == nil {
		return nil, ErrNoBill
	}

	roster := make(map[string]bool, len(sess.Participants))
	for _, p := range sess.Participants {
		roster[p.ID] = true
	}

	var assignees []string
	if req.All {
		assignees = make([]string, len(sess.Participants))
		for i, p := range sess.Participants {
			assignees[i] = p.ID
		}
	} else {
		assignees = make([]string, 0, len(req.ParticipantIDs))
		seen := make(map[string]bool, len(req.ParticipantIDs))
		for _, id := range req.ParticipantIDs {
			if !roster[id] {
				return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, id)
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			assignees = append(assignees, id)
		}
	}

	var updated *session.Item
	for i := range sess.Bill.Items {
		if sess.Bill.Items[i].ID == itemID {
			sess.Bill.Items[i].AssignedTo = assignees
			updated = &sess.Bill.Items[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}

	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveTax zeroes the bill's tax
func (s *Service) RemoveTax(ctx context.Context, sessionID string) (*session.Bill, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Bill == nil {
		return nil, ErrNoBill
	}

	sess.Bill.RemoveTax()
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Bill, nil
}

// ComputeSplit derives the per-participant settlement from the current
// session state. It is recomputed from scratch on every call; without
// a bill or participants the result set is simply empty.
func (s *Service) ComputeSplit(ctx context.Context, sessionID string) (*SplitResponse, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Bill == nil || len(sess.Participants) == 0 {
		return &SplitResponse{Results: []ResultResponse{}}, nil
	}

	items := make([]split.Item, len(sess.Bill.Items))
	for i, item := range sess.Bill.Items {
		items[i] = split.Item{
			Name:       item.Name,
			Price:      item.Price,
			AssignedTo: item.AssignedTo,
		}
	}

	participantIDs := make([]string, len(sess.Participants))
	byID := make(map[string]session.Participant, len(sess.Participants))
	for i, p := range sess.Participants {
		participantIDs[i] = p.ID
		byID[p.ID] = p
	}

	results := split.Compute(items, sess.Bill.Tax, participantIDs)

	resp := &SplitResponse{
		Results:       make([]ResultResponse, len(results)),
		FullyAssigned: sess.Bill.FullyAssigned(),
	}
	for i, res := range results {
		p := byID[res.ParticipantID]
		resp.Results[i] = ResultResponse{
			ParticipantID: res.ParticipantID,
			Name:          p.Name,
			Initials:      p.Initials,
			Subtotal:      res.Subtotal,
			TaxShare:      res.TaxShare,
			Total:         res.Total,
			Display:       currency.FormatRupiah(res.Total),
			Items:         res.Items,
		}
	}
	resp.ShareText = shareText(sess, resp.Results)

	return resp, nil
}

// shareText renders the summary message for the native share sheet.
func shareText(sess *session.Session, results []ResultResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PatunganYuk! Total Tagihan: %s\n\n", currency.FormatRupiah(sess.Bill.Total))

	for _, res := range results {
		fmt.Fprintf(&b, "🤑 %s bayar: %s\n", res.Name, res.Display)
	}

	bank := sess.Bank
	if bank.BankName != "" && bank.AccountNumber != "" && bank.AccountName != "" {
		fmt.Fprintf(&b, "\nTransfer ke:\nBank: %s\nNo. Rek: %s\na.n. %s\n\n", bank.BankName, bank.AccountNumber, bank.AccountName)
	}

	b.WriteString("Dibikin pake PatunganYuk! ✨")
	return b.String()
}
