package booking

import (
	"context"
	"fmt"

	"glamvan/models"

	"go.uber.org/zap"
)

// Loyalty tier thresholds, in completed bookings.
const (
	silverAt       = 5
	goldAt         = 10
	pointsPerVisit = 50
)

// ExperienceService backs the two post-completion wizard steps: the
// loyalty program snapshot and the experience rating.
type ExperienceService interface {
	RateExperience(ctx context.Context, rating models.Rating) error
	LoyaltySnapshot(ctx context.Context, email string) (*models.LoyaltySnapshot, error)
}

// DefaultExperienceService implements ExperienceService over the booking
// records.
type DefaultExperienceService struct {
	Bookings BookingRecords
	Logger   *zap.Logger
}

// RateExperience records a star rating against a finalized booking.
func (s *DefaultExperienceService) RateExperience(ctx context.Context, rating models.Rating) error {
	if rating.Stars < 1 || rating.Stars > 5 {
		return fmt.Errorf("rating must be between 1 and 5 stars, got %d", rating.Stars)
	}
	if _, err := s.Bookings.GetByConfirmationCode(ctx, rating.ConfirmationCode); err != nil {
		return fmt.Errorf("failed to locate booking %s: %w", rating.ConfirmationCode, err)
	}
	if err := s.Bookings.SetRating(ctx, rating.ConfirmationCode, rating.Stars, rating.Comment); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("experience rated",
			zap.String("code", rating.ConfirmationCode),
			zap.Int("stars", rating.Stars))
	}
	return nil
}

// LoyaltySnapshot derives the client's loyalty standing from their
// completed bookings.
func (s *DefaultExperienceService) LoyaltySnapshot(ctx context.Context, email string) (*models.LoyaltySnapshot, error) {
	completed, err := s.Bookings.CountByEmailAndStatus(ctx, email, models.BookingCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed bookings: %w", err)
	}

	snap := &models.LoyaltySnapshot{
		Email:             email,
		CompletedBookings: completed,
		Points:            completed * pointsPerVisit,
	}
	switch {
	case completed >= goldAt:
		snap.Tier = models.TierGold
	case completed >= silverAt:
		snap.Tier = models.TierSilver
		snap.NextTierAt = goldAt
	default:
		snap.Tier = models.TierBronze
		snap.NextTierAt = silverAt
	}
	return snap, nil
}
