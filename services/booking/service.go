package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionService implements SessionService. Each operation loads the
// saved wizard state, rebuilds the wizard over fresh catalog and fleet
// snapshots, applies the operation, and saves the state back.
type DefaultSessionService struct {
	Catalog  CatalogSource
	Vans     VanSource
	Stylists StylistSource
	Bookings BookingRecords
	Store    SessionStore
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultSessionService) clock() func() time.Time {
	if s.Now != nil {
		return s.Now
	}
	return time.Now
}

func (s *DefaultSessionService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// buildWizard assembles a wizard over fresh snapshots, optionally restoring
// saved state.
func (s *DefaultSessionService) buildWizard(ctx context.Context, state *State) (*Wizard, error) {
	catalog, err := s.Catalog.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}
	vans, err := s.Vans.ListVans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load van fleet: %w", err)
	}
	opts := []Option{
		WithClock(s.clock()),
		WithLogger(s.logger()),
	}
	if state != nil {
		opts = append(opts, WithState(*state))
	}
	return NewWizard(catalog, NewDispatchResolver(vans), s.Bookings, opts...), nil
}

// StartSession creates a new wizard session, optionally pre-seeded with a
// deep-linked service.
func (s *DefaultSessionService) StartSession(ctx context.Context, preselected string) (*Session, error) {
	w, err := s.buildWizard(ctx, nil)
	if err != nil {
		return nil, err
	}
	if preselected != "" {
		w.Preselect(preselected)
	}

	sessionID := uuid.New().String()
	if err := s.Store.Save(ctx, sessionID, w.State()); err != nil {
		return nil, err
	}
	s.logger().Info("booking session started",
		zap.String("sessionId", sessionID),
		zap.String("preselected", preselected))
	return s.view(ctx, sessionID, w), nil
}

// GetSession returns the current view of a session.
func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	w, err := s.loadWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, w), nil
}

// UpdateSession merges a draft patch and saves the recomputed state.
func (s *DefaultSessionService) UpdateSession(ctx context.Context, sessionID string, patch DraftPatch) (*Session, error) {
	w, err := s.loadWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	w.UpdateDraft(patch)
	if err := s.Store.Save(ctx, sessionID, w.State()); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, w), nil
}

// AdvanceSession attempts a step advance. A refused advance surfaces
// ErrValidationBlocked; a failed finalize surfaces the SubmitError with the
// session state untouched, so the client can retry.
func (s *DefaultSessionService) AdvanceSession(ctx context.Context, sessionID string) (*Session, error) {
	w, err := s.loadWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := w.Advance(ctx); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, sessionID, w.State()); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, w), nil
}

// RetreatSession moves one step back.
func (s *DefaultSessionService) RetreatSession(ctx context.Context, sessionID string) (*Session, error) {
	w, err := s.loadWizard(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	w.Retreat()
	if err := s.Store.Save(ctx, sessionID, w.State()); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, w), nil
}

// CancelSession abandons the wizard and discards the draft.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to discard booking session: %w", err)
	}
	s.logger().Info("booking session abandoned", zap.String("sessionId", sessionID))
	return nil
}

func (s *DefaultSessionService) loadWizard(ctx context.Context, sessionID string) (*Wizard, error) {
	state, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildWizard(ctx, &state)
}

// view assembles the client-facing session payload, including the matched
// stylists for the implied categories.
func (s *DefaultSessionService) view(ctx context.Context, sessionID string, w *Wizard) *Session {
	state := w.State()
	sess := &Session{
		SessionID:  sessionID,
		Step:       state.Step,
		StepName:   StepNames[state.Step],
		Draft:      state.Draft,
		Categories: state.Categories,
		Quote:      state.Quote,
		Total:      state.Quote.DisplayTotal(),
		CanAdvance: StepComplete(state.Step, &state.Draft),
	}
	// Card details stay presence-checked server side; never echo them back.
	sess.Draft.Payment = sess.Draft.Payment.Masked()
	if len(state.Categories) > 0 {
		stylists, err := s.Stylists.ListStylists(ctx)
		if err != nil {
			s.logger().Warn("failed to load stylists for session view", zap.Error(err))
		} else {
			sess.Stylists = MatchStylists(stylists, state.Categories, IsWeddingSelection(state.Draft.Services))
		}
	}
	return sess
}
