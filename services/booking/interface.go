package booking

import (
	"context"

	"glamvan/models"
)

// CatalogSource supplies the service catalog snapshot for a session.
type CatalogSource interface {
	ListServices(ctx context.Context) ([]models.Service, error)
}

// VanSource supplies the current van fleet snapshot.
type VanSource interface {
	ListVans(ctx context.Context) ([]models.Van, error)
}

// StylistSource supplies the stylist roster snapshot.
type StylistSource interface {
	ListStylists(ctx context.Context) ([]models.Stylist, error)
}

// BookingRecords is the persistence contract for finalized bookings, as
// consumed by the booking engine and the post-completion steps.
type BookingRecords interface {
	BookingWriter
	GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error)
	SetRating(ctx context.Context, code string, stars int, comment string) error
	CountByEmailAndStatus(ctx context.Context, email, status string) (int, error)
}

// SessionService manages stateful wizard sessions over the session store.
type SessionService interface {
	StartSession(ctx context.Context, preselected string) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	UpdateSession(ctx context.Context, sessionID string, patch DraftPatch) (*Session, error)
	AdvanceSession(ctx context.Context, sessionID string) (*Session, error)
	RetreatSession(ctx context.Context, sessionID string) (*Session, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// Session is the client-facing view of a wizard session.
type Session struct {
	SessionID  string              `json:"sessionId"`
	Step       int                 `json:"step"`
	StepName   string              `json:"stepName"`
	Draft      models.BookingDraft `json:"draft"`
	Categories []string            `json:"categories,omitempty"`
	Quote      Quote               `json:"quote"`
	Total      int                 `json:"total"` // display-rounded
	CanAdvance bool                `json:"canAdvance"`
	Stylists   []models.Stylist    `json:"stylists,omitempty"`
}
