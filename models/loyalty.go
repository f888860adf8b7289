package models

// Loyalty tiers, awarded on completed bookings.
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// LoyaltySnapshot summarizes a client's completed bookings and reward tier.
type LoyaltySnapshot struct {
	Email             string `json:"email"`
	CompletedBookings int    `json:"completedBookings"`
	Points            int    `json:"points"`
	Tier              string `json:"tier"`
	NextTierAt        int    `json:"nextTierAt,omitempty"` // bookings needed for the next tier
}

// Rating is the payload of the post-completion rate-experience step.
type Rating struct {
	ConfirmationCode string `json:"confirmationCode"`
	Stars            int    `json:"stars"`
	Comment          string `json:"comment,omitempty"`
}
