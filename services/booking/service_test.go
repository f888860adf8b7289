package booking

import (
	"context"
	"testing"
	"time"

	"glamvan/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogSource struct{ services []models.Service }

func (f fakeCatalogSource) ListServices(context.Context) ([]models.Service, error) {
	return f.services, nil
}

type fakeVanSource struct{ vans []models.Van }

func (f fakeVanSource) ListVans(context.Context) ([]models.Van, error) {
	return f.vans, nil
}

type fakeStylistSource struct{ stylists []models.Stylist }

func (f fakeStylistSource) ListStylists(context.Context) ([]models.Stylist, error) {
	return f.stylists, nil
}

func newTestSessionService(t *testing.T) *DefaultSessionService {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultSessionService{
		Catalog:  fakeCatalogSource{wizardCatalog()},
		Vans:     fakeVanSource{testFleet()},
		Stylists: fakeStylistSource{testRoster()},
		Bookings: newFakeRecords(),
		Store:    NewRedisSessionStore(client),
		Now:      fixedClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	}
}

func TestSessionServiceStateSurvivesTheStore(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.UpdateSession(ctx, sess.SessionID, DraftPatch{Services: []string{"Haircut & Styling"}})
	require.NoError(t, err)
	advanced, err := svc.AdvanceSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepDateTime, advanced.Step)

	// A later request sees the saved state, not a fresh wizard.
	reloaded, err := svc.GetSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepDateTime, reloaded.Step)
	assert.Equal(t, []string{"Haircut & Styling"}, reloaded.Draft.Services)
	assert.Equal(t, []string{models.CategoryHair}, reloaded.Categories)
}

func TestSessionServiceViewMasksCardDetails(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	updated, err := svc.UpdateSession(ctx, sess.SessionID, DraftPatch{
		Payment: &models.PaymentSelection{
			Method: models.PaymentCard,
			Card: &models.CardInfo{
				CardNumber: "4111111111111111",
				CardHolder: "Nour Hassan",
				ExpiryDate: "12/27",
				CVV:        "123",
			},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Draft.Payment.Card)
	assert.Equal(t, "**** **** **** 1111", updated.Draft.Payment.Card.CardNumber)
	assert.Empty(t, updated.Draft.Payment.Card.CVV)

	// The stored draft keeps the full selection so the payment step still
	// validates as complete.
	state, err := svc.Store.Load(ctx, sess.SessionID)
	require.NoError(t, err)
	require.NotNil(t, state.Draft.Payment.Card)
	assert.Equal(t, "4111111111111111", state.Draft.Payment.Card.CardNumber)
	assert.Equal(t, "123", state.Draft.Payment.Card.CVV)
	assert.True(t, state.Draft.Payment.Complete())
}

func TestSessionServiceUnknownSession(t *testing.T) {
	svc := newTestSessionService(t)

	_, err := svc.GetSession(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionServiceCancelDiscards(t *testing.T) {
	svc := newTestSessionService(t)
	ctx := context.Background()

	sess, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	require.NoError(t, svc.CancelSession(ctx, sess.SessionID))

	_, err = svc.GetSession(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
