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

func newTestStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client), mr
}

func sampleState() State {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	return State{
		Step: StepPayment,
		Draft: models.BookingDraft{
			Category:  models.CategoryHair,
			Services:  []string{"Haircut & Styling", "Full Glam Makeup"},
			Date:      &date,
			Time:      "10:00 AM",
			StylistID: "sty-1",
			Location:  "New Cairo",
			Address:   "123 Street 90",
			FullName:  "Nour Hassan",
			Phone:     "+201001234567",
			Email:     "nour@example.com",
			Payment: models.PaymentSelection{
				Method: models.PaymentCard,
				Card: &models.CardInfo{
					CardNumber: "4111111111111111",
					CardHolder: "Nour Hassan",
					ExpiryDate: "12/27",
					CVV:        "123",
				},
			},
			AssignedVan: "VAN-001",
		},
		Categories: []string{models.CategoryHair, models.CategoryMakeup},
		Quote:      Quote{Total: 1150},
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	saved := sampleState()

	require.NoError(t, store.Save(ctx, "sess-1", saved))
	loaded, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)

	require.NotNil(t, loaded.Draft.Date)
	assert.True(t, loaded.Draft.Date.Equal(*saved.Draft.Date))
	loaded.Draft.Date = saved.Draft.Date
	assert.Equal(t, saved, loaded)
}

func TestSessionStoreMiss(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreLoadAfterDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", sampleState()))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", sampleState()))
	mr.FastForward(sessionTTL + time.Minute)

	_, err := store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreSaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", sampleState()))
	mr.FastForward(sessionTTL - time.Minute)
	require.NoError(t, store.Save(ctx, "sess-1", sampleState()))
	mr.FastForward(sessionTTL - time.Minute)

	_, err := store.Load(ctx, "sess-1")
	assert.NoError(t, err, "each save restarts the session TTL")
}
