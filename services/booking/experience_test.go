package booking

import (
	"context"
	"errors"
	"testing"

	"glamvan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecords is an in-memory BookingRecords for the post-completion steps.
type fakeRecords struct {
	fakeWriter
	byCode    map[string]*models.Booking
	ratings   map[string]int
	completed map[string]int // email -> completed bookings
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		byCode:    make(map[string]*models.Booking),
		ratings:   make(map[string]int),
		completed: make(map[string]int),
	}
}

func (f *fakeRecords) GetByConfirmationCode(_ context.Context, code string) (*models.Booking, error) {
	b, ok := f.byCode[code]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return b, nil
}

func (f *fakeRecords) SetRating(_ context.Context, code string, stars int, _ string) error {
	f.ratings[code] = stars
	return nil
}

func (f *fakeRecords) CountByEmailAndStatus(_ context.Context, email, status string) (int, error) {
	if status != models.BookingCompleted {
		return 0, nil
	}
	return f.completed[email], nil
}

func TestRateExperience(t *testing.T) {
	records := newFakeRecords()
	records.byCode["GV1234"] = &models.Booking{ConfirmationCode: "GV1234"}
	svc := &DefaultExperienceService{Bookings: records}

	err := svc.RateExperience(context.Background(), models.Rating{ConfirmationCode: "GV1234", Stars: 5, Comment: "amazing"})
	require.NoError(t, err)
	assert.Equal(t, 5, records.ratings["GV1234"])
}

func TestRateExperienceRejectsOutOfRangeStars(t *testing.T) {
	svc := &DefaultExperienceService{Bookings: newFakeRecords()}

	assert.Error(t, svc.RateExperience(context.Background(), models.Rating{ConfirmationCode: "GV1234", Stars: 0}))
	assert.Error(t, svc.RateExperience(context.Background(), models.Rating{ConfirmationCode: "GV1234", Stars: 6}))
}

func TestRateExperienceUnknownBooking(t *testing.T) {
	svc := &DefaultExperienceService{Bookings: newFakeRecords()}

	err := svc.RateExperience(context.Background(), models.Rating{ConfirmationCode: "GV9999", Stars: 4})
	assert.Error(t, err)
}

func TestLoyaltySnapshotTiers(t *testing.T) {
	records := newFakeRecords()
	svc := &DefaultExperienceService{Bookings: records}
	ctx := context.Background()

	cases := []struct {
		completed  int
		tier       string
		nextTierAt int
	}{
		{0, models.TierBronze, 5},
		{4, models.TierBronze, 5},
		{5, models.TierSilver, 10},
		{9, models.TierSilver, 10},
		{10, models.TierGold, 0},
		{25, models.TierGold, 0},
	}
	for _, tc := range cases {
		records.completed["nour@example.com"] = tc.completed

		snap, err := svc.LoyaltySnapshot(ctx, "nour@example.com")
		require.NoError(t, err)
		assert.Equal(t, tc.tier, snap.Tier, "completed=%d", tc.completed)
		assert.Equal(t, tc.nextTierAt, snap.NextTierAt, "completed=%d", tc.completed)
		assert.Equal(t, tc.completed*50, snap.Points, "completed=%d", tc.completed)
	}
}
