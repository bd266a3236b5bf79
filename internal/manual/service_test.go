package manual_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patunganyuk/patungan/internal/manual"
	"github.com/patunganyuk/patungan/internal/session"
	"github.com/patunganyuk/patungan/internal/session/memory"
)

func newFixture(t *testing.T) (*manual.Service, string) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	sess, err := session.NewService(store).Create(ctx)
	require.NoError(t, err)

	return manual.NewService(store), sess.ID
}

func TestSetTotalParsesFreeformInput(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newFixture(t)

	state, err := svc.SetTotal(ctx, sessionID, "Rp 150.000")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), state.TotalBill)

	// Garbage parses to zero, never an error.
	state, err = svc.SetTotal(ctx, sessionID, "gratis")
	require.NoError(t, err)
	assert.Equal(t, int64(0), state.TotalBill)

	_, err = svc.SetTotal(ctx, "missing", "1000")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManualRoster(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newFixture(t)

	p, err := svc.AddParticipant(ctx, sessionID, " Dewi Lestari ")
	require.NoError(t, err)
	assert.Equal(t, "Dewi Lestari", p.Name)
	assert.Equal(t, "DL", p.Initials)
	assert.Equal(t, int64(0), p.Amount)

	_, err = svc.AddParticipant(ctx, sessionID, "  ")
	assert.ErrorIs(t, err, session.ErrEmptyName)

	require.NoError(t, svc.RemoveParticipant(ctx, sessionID, p.ID))
	assert.ErrorIs(t, svc.RemoveParticipant(ctx, sessionID, p.ID), manual.ErrParticipantNotFound)
}

func TestSetAmount(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newFixture(t)

	p, err := svc.AddParticipant(ctx, sessionID, "Dewi")
	require.NoError(t, err)

	updated, err := svc.SetAmount(ctx, sessionID, p.ID, "40.000")
	require.NoError(t, err)
	assert.Equal(t, int64(40000), updated.Amount)

	_, err = svc.SetAmount(ctx, sessionID, "nope", "1000")
	assert.ErrorIs(t, err, manual.ErrParticipantNotFound)
}

func TestReconciliationFlow(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newFixture(t)

	_, err := svc.SetTotal(ctx, sessionID, "100000")
	require.NoError(t, err)

	dewi, err := svc.AddParticipant(ctx, sessionID, "Dewi")
	require.NoError(t, err)
	eko, err := svc.AddParticipant(ctx, sessionID, "Eko")
	require.NoError(t, err)

	_, err = svc.SetAmount(ctx, sessionID, dewi.ID, "40000")
	require.NoError(t, err)
	_, err = svc.SetAmount(ctx, sessionID, eko.ID, "35000")
	require.NoError(t, err)

	resp, err := svc.Reconciliation(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), resp.TotalBill)
	assert.Equal(t, int64(75000), resp.TotalCollected)
	assert.Equal(t, int64(25000), resp.RemainingBalance)
	assert.Equal(t, manual.StatusShortfall, resp.Status)
	assert.Equal(t, "Rp25.000", resp.Display)
	assert.Contains(t, resp.ShareText, "Dewi udah setor: Rp40.000")
	assert.Contains(t, resp.ShareText, "Sisa: Rp25.000")

	// Top up to exactly the total: settled.
	_, err = svc.SetAmount(ctx, sessionID, eko.ID, "60000")
	require.NoError(t, err)

	resp, err = svc.Reconciliation(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, manual.StatusSettled, resp.Status)
	assert.Contains(t, resp.ShareText, "LUNAS! Mantap jiwa bestie.")

	// Overshoot: surplus, magnitude shown positive.
	_, err = svc.SetAmount(ctx, sessionID, eko.ID, "80000")
	require.NoError(t, err)

	resp, err = svc.Reconciliation(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, manual.StatusSurplus, resp.Status)
	assert.Equal(t, int64(-20000), resp.RemainingBalance)
	assert.Equal(t, "Rp20.000", resp.Display)
}
