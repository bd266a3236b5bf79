package receipt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patunganyuk/patungan/internal/receipt"
	"github.com/patunganyuk/patungan/internal/session"
	"github.com/patunganyuk/patungan/internal/session/memory"
)

const photo = "data:image/jpeg;base64,AAAA"

// stubVision is a canned VisionClient for exercising the service
// without the real API.
type stubVision struct {
	validation    *receipt.Validation
	validationErr error
	extraction    *receipt.Extraction
	extractionErr error
	proof         *receipt.ProofValidation
	proofErr      error
}

func (s *stubVision) ValidateReceipt(ctx context.Context, dataURI string) (*receipt.Validation, error) {
	return s.validation, s.validationErr
}

func (s *stubVision) ExtractItems(ctx context.Context, dataURI string) (*receipt.Extraction, error) {
	return s.extraction, s.extractionErr
}

func (s *stubVision) ValidateProofPhoto(ctx context.Context, dataURI string) (*receipt.ProofValidation, error) {
	return s.proof, s.proofErr
}

func newFixture(t *testing.T, vision receipt.VisionClient) (*receipt.Service, *memory.Store, string) {
	t.Helper()
	store := memory.New()
	sess, err := session.NewService(store).Create(context.Background())
	require.NoError(t, err)
	return receipt.NewService(store, vision), store, sess.ID
}

func TestValidatePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("missing or malformed photo", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{})

		_, err := svc.ValidatePhoto(ctx, "")
		assert.ErrorIs(t, err, receipt.ErrMissingPhoto)

		_, err = svc.ValidatePhoto(ctx, "https://example.com/struk.jpg")
		assert.ErrorIs(t, err, receipt.ErrMissingPhoto)
	})

	t.Run("genuine receipt", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{
			validation: &receipt.Validation{IsReceipt: true},
		})

		verdict, err := svc.ValidatePhoto(ctx, photo)
		require.NoError(t, err)
		assert.True(t, verdict.IsReceipt)
	})

	t.Run("rejection carries the model's reason", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{
			validation: &receipt.Validation{IsReceipt: false, Reason: "Ini foto kucing, bukan struk."},
		})

		_, err := svc.ValidatePhoto(ctx, photo)
		var rejection *receipt.RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Ini foto kucing, bukan struk.", rejection.Reason)
	})

	t.Run("rejection without a reason gets the fallback", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{
			validation: &receipt.Validation{IsReceipt: false},
		})

		_, err := svc.ValidatePhoto(ctx, photo)
		var rejection *receipt.RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Coba upload foto struk yang bener, ya.", rejection.Reason)
	})
}

func TestValidateProofPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("missing or malformed photo", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{})

		_, err := svc.ValidateProofPhoto(ctx, "")
		assert.ErrorIs(t, err, receipt.ErrMissingPhoto)

		_, err = svc.ValidateProofPhoto(ctx, "https://example.com/toko.jpg")
		assert.ErrorIs(t, err, receipt.ErrMissingPhoto)
	})

	t.Run("genuine proof of purchase", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{
			proof: &receipt.ProofValidation{IsValid: true},
		})

		verdict, err := svc.ValidateProofPhoto(ctx, photo)
		require.NoError(t, err)
		assert.True(t, verdict.IsValid)
	})

	t.Run("receipt is not valid proof", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{
			proof: &receipt.ProofValidation{IsValid: false, Reason: "Ini struk, bukan bukti belanja."},
		})

		_, err := svc.ValidateProofPhoto(ctx, photo)
		var rejection *receipt.RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Ini struk, bukan bukti belanja.", rejection.Reason)
	})

	t.Run("rejection without a reason gets the fallback", func(t *testing.T) {
		svc, _, _ := newFixture(t, &stubVision{
			proof: &receipt.ProofValidation{IsValid: false},
		})

		_, err := svc.ValidateProofPhoto(ctx, photo)
		var rejection *receipt.RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Fotonya kurang meyakinkan nih. Coba foto tokonya atau belanjaannya, ya.", rejection.Reason)
	})
}

func TestProcessReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes amounts into a bill", func(t *testing.T) {
		svc, store, sessionID := newFixture(t, &stubVision{
			validation: &receipt.Validation{IsReceipt: true},
			extraction: &receipt.Extraction{
				Items: []receipt.ExtractedItem{
					{Item: "Nasi Goreng", Quantity: 2, Price: "50.000"},
					{Item: "Es Teh", Quantity: 0, Price: "Rp8.000"},
				},
				Subtotal: "58.000",
				Tax:      "5.800",
				Total:    "63.800",
			},
		})

		bill, err := svc.ProcessReceipt(ctx, sessionID, photo)
		require.NoError(t, err)

		require.Len(t, bill.Items, 2)
		assert.Equal(t, "Nasi Goreng", bill.Items[0].Name)
		assert.Equal(t, 50000.0, bill.Items[0].Price)
		assert.Equal(t, 1, bill.Items[1].Quantity) // zero quantity clamped
		assert.Equal(t, 8000.0, bill.Items[1].Price)
		assert.Empty(t, bill.Items[0].AssignedTo)

		assert.Equal(t, 58000.0, bill.Subtotal)
		assert.Equal(t, 5800.0, bill.Tax)
		assert.Equal(t, 63800.0, bill.Total)

		got, err := store.Get(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, got.Bill)
		assert.Equal(t, 63800.0, got.Bill.Total)
	})

	t.Run("missing subtotal and total are derived", func(t *testing.T) {
		svc, _, sessionID := newFixture(t, &stubVision{
			validation: &receipt.Validation{IsReceipt: true},
			extraction: &receipt.Extraction{
				Items: []receipt.ExtractedItem{
					{Item: "Bakso", Quantity: 1, Price: "20.000"},
					{Item: "Teh Manis", Quantity: 1, Price: "5.000"},
				},
				Tax: "2.500",
			},
		})

		bill, err := svc.ProcessReceipt(ctx, sessionID, photo)
		require.NoError(t, err)
		assert.Equal(t, 25000.0, bill.Subtotal)
		assert.Equal(t, 2500.0, bill.Tax)
		assert.Equal(t, 27500.0, bill.Total)
	})

	t.Run("extraction failure leaves the session untouched", func(t *testing.T) {
		svc, store, sessionID := newFixture(t, &stubVision{
			validation:    &receipt.Validation{IsReceipt: true},
			extractionErr: errors.New("model timeout"),
		})

		_, err := svc.ProcessReceipt(ctx, sessionID, photo)
		var rejection *receipt.RejectionError
		require.ErrorAs(t, err, &rejection)

		got, err := store.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Nil(t, got.Bill)
	})

	t.Run("empty extraction is rejected", func(t *testing.T) {
		svc, store, sessionID := newFixture(t, &stubVision{
			validation: &receipt.Validation{IsReceipt: true},
			extraction: &receipt.Extraction{Items: []receipt.ExtractedItem{}},
		})

		_, err := svc.ProcessReceipt(ctx, sessionID, photo)
		var rejection *receipt.RejectionError
		require.ErrorAs(t, err, &rejection)

		got, err := store.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Nil(t, got.Bill)
	})

	t.Run("rejected photo never reaches extraction", func(t *testing.T) {
		svc, _, sessionID := newFixture(t, &stubVision{
			validation: &receipt.Validation{IsReceipt: false, Reason: "Bukan struk."},
		})

		_, err := svc.ProcessReceipt(ctx, sessionID, photo)
		var rejection *receipt.RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Bukan struk.", rejection.Reason)
	})
}
