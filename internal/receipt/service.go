// Package receipt is the boundary with the external AI vision service:
// photo validation and item extraction. It normalizes the model's raw
// output into a Bill; the settlement core never sees currency strings
// or vision failures.
package receipt

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/patunganyuk/patungan/internal/currency"
	"github.com/patunganyuk/patungan/internal/session"
)

// Common errors
var (
	ErrMissingPhoto = errors.New("no receipt photo provided")
)

// Service orchestrates validation, extraction, and bill construction
type Service struct {
	store  session.Store
	vision VisionClient
}

// NewService creates a new receipt service with dependencies injected
func NewService(store session.Store, vision VisionClient) *Service {
	return &Service{store: store, vision: vision}
}

// ValidatePhoto checks that an uploaded image is a genuine receipt.
// A negative verdict comes back as a RejectionError carrying the
// model's explanation.
func (s *Service) ValidatePhoto(ctx context.Context, dataURI string) (*Validation, error) {
	if dataURI == "" || !IsDataURI(dataURI) {
		return nil, ErrMissingPhoto
	}

	verdict, err := s.vision.ValidateReceipt(ctx, dataURI)
	if err != nil {
		return nil, err
	}
	if !verdict.IsReceipt {
		reason := verdict.Reason
		if reason == "" {
			reason = "Coba upload foto struk yang bener, ya."
		}
		return nil, &RejectionError{Reason: reason}
	}
	return verdict, nil
}

// ValidateProofPhoto checks that an uploaded image works as proof of
// purchase for the manual flow. The classifier is stricter than the
// receipt one and rejects receipts outright.
func (s *Service) ValidateProofPhoto(ctx context.Context, dataURI string) (*ProofValidation, error) {
	if dataURI == "" || !IsDataURI(dataURI) {
		return nil, ErrMissingPhoto
	}

	verdict, err := s.vision.ValidateProofPhoto(ctx, dataURI)
	if err != nil {
		return nil, err
	}
	if !verdict.IsValid {
		reason := verdict.Reason
		if reason == "" {
			reason = "Fotonya kurang meyakinkan nih. Coba foto tokonya atau belanjaannya, ya."
		}
		return nil, &RejectionError{Reason: reason}
	}
	return verdict, nil
}

// ProcessReceipt runs the whole scan round: validate the photo,
// extract items, parse amounts, and replace the session's bill.
// On any failure the session is left exactly as it was.
func (s *Service) ProcessReceipt(ctx context.Context, sessionID, dataURI string) (*session.Bill, error) {
	if _, err := s.ValidatePhoto(ctx, dataURI); err != nil {
		return nil, err
	}

	extraction, err := s.vision.ExtractItems(ctx, dataURI)
	if err != nil {
		slog.Error("receipt extraction failed", "session_id", sessionID, "error", err)
		return nil, &RejectionError{Reason: "Gagal baca struknya nih. Fotonya burem kali atau formatnya aneh. Coba lagi pake foto yang lebih oke."}
	}
	if len(extraction.Items) == 0 {
		return nil, &RejectionError{Reason: "Duh, AI-nya bingung nih. Gak nemu item di struk. Coba pake foto yang lebih jelas, kuy."}
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Bill = buildBill(extraction)
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}

	slog.Info("receipt processed",
		"session_id", sessionID,
		"items", len(sess.Bill.Items),
		"subtotal", sess.Bill.Subtotal,
		"tax", sess.Bill.Tax,
		"total", sess.Bill.Total,
	)
	return sess.Bill, nil
}

// buildBill converts raw extraction output into a normalized Bill.
// Amount strings go through the Rupiah parser; absent subtotal falls
// back to the item sum, absent tax stays zero, absent total falls back
// to subtotal plus tax.
func buildBill(extraction *Extraction) *session.Bill {
	items := make([]session.Item, len(extraction.Items))
	for i, raw := range extraction.Items {
		quantity := raw.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items[i] = session.Item{
			ID:         uuid.NewString(),
			Name:       raw.Item,
			Quantity:   quantity,
			Price:      currency.ParseRupiah(raw.Price),
			AssignedTo: []string{},
		}
	}

	subtotal := currency.ParseRupiah(extraction.Subtotal)
	tax := currency.ParseRupiah(extraction.Tax)
	total := currency.ParseRupiah(extraction.Total)

	return session.NewBill(items, subtotal, tax, total)
}
