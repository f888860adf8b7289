package booking

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"glamvan/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingWriter persists a finalized booking record. The wizard treats it
// as an opaque collaborator: on failure the draft is left unchanged so the
// same advance can be retried.
type BookingWriter interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
}

// State is the serializable wizard state. It round-trips through the
// session store between requests.
type State struct {
	Step       int                 `json:"step"`
	Draft      models.BookingDraft `json:"draft"`
	Categories []string            `json:"categories,omitempty"` // implied by selected services
	Quote      Quote               `json:"quote"`
}

// DraftPatch is a partial update to the booking draft. Nil fields are left
// untouched. Services replaces the whole selection; ToggleService flips a
// single title in or out.
type DraftPatch struct {
	Category      *string                  `json:"category,omitempty"`
	Services      []string                 `json:"services,omitempty"`
	ToggleService *string                  `json:"toggleService,omitempty"`
	Date          *time.Time               `json:"date,omitempty"`
	Time          *string                  `json:"time,omitempty"`
	StylistID     *string                  `json:"stylistId,omitempty"`
	Location      *string                  `json:"location,omitempty"`
	Address       *string                  `json:"address,omitempty"`
	FullName      *string                  `json:"fullName,omitempty"`
	Phone         *string                  `json:"phone,omitempty"`
	Email         *string                  `json:"email,omitempty"`
	Notes         *string                  `json:"notes,omitempty"`
	Payment       *models.PaymentSelection `json:"payment,omitempty"`
}

// Wizard drives the nine-step booking flow over an injected read-only
// catalog and van snapshot. All mutations are serialized by a mutex:
// exactly one update is in flight per wizard at a time.
type Wizard struct {
	mu       sync.Mutex
	catalog  map[string]models.Service // keyed by title
	resolver *DispatchResolver
	writer   BookingWriter
	now      func() time.Time
	logger   *zap.Logger
	state    State
}

// Option configures a wizard at construction time.
type Option func(*Wizard)

// WithClock overrides the wall clock, used by pricing and the advance
// notice check.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Wizard) { w.logger = l }
}

// WithState restores a previously saved wizard state.
func WithState(s State) Option {
	return func(w *Wizard) { w.state = s }
}

// weddingPackageAliases maps deep-link slugs to wedding package titles.
var weddingPackageAliases = map[string]string{
	"bridal":                  "Bridal Package",
	"bridal-package":          "Bridal Package",
	"premium-wedding":         "Premium Wedding Package",
	"premium-wedding-package": "Premium Wedding Package",
	"mother-wedding":          "Mother Package",
	"mother-wedding-package":  "Mother Package",
	"bridesmaids":             "Bridesmaids Package",
	"bridesmaids-package":     "Bridesmaids Package",
}

// NewWizard builds a wizard over the given catalog and van snapshot.
func NewWizard(catalog []models.Service, resolver *DispatchResolver, writer BookingWriter, opts ...Option) *Wizard {
	byTitle := make(map[string]models.Service, len(catalog))
	for _, s := range catalog {
		byTitle[s.Title] = s
	}
	w := &Wizard{
		catalog:  byTitle,
		resolver: resolver,
		writer:   writer,
		now:      time.Now,
		logger:   zap.NewNop(),
		state:    State{Draft: models.BookingDraft{Payment: models.PaymentSelection{Method: models.PaymentCash}}},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Preselect seeds the draft from a deep-link service parameter, resolving
// wedding package aliases first and falling back to catalog link matching.
func (w *Wizard) Preselect(param string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var svc *models.Service
	if title, ok := weddingPackageAliases[param]; ok {
		if s, found := w.catalog[title]; found {
			svc = &s
		}
	}
	if svc == nil {
		for _, s := range w.catalog {
			if s.Link != "" && s.Link == param {
				svc = &s
				break
			}
		}
	}
	if svc == nil {
		w.logger.Debug("preselect: no catalog match", zap.String("param", param))
		return
	}
	w.state.Draft.Category = svc.Category
	w.state.Draft.Services = []string{svc.Title}
	w.recomputeCategories()
	w.requote()
}

// State returns a copy of the current wizard state.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// CurrentStep returns the current step index.
func (w *Wizard) CurrentStep() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Step
}

// CanAdvance reports whether the current step's completion rule is
// satisfied. Callers should poll it to render disabled controls.
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return StepComplete(w.state.Step, &w.state.Draft)
}

// Advance moves to the next step if the current step is complete, and is
// otherwise a refused no-op returning ErrValidationBlocked. Advancing from
// the Payment step finalizes the booking: a confirmation code is
// generated, the record is handed to the booking writer, and only on
// success is the draft marked completed. A writer failure leaves the draft
// exactly as it was.
func (w *Wizard) Advance(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !StepComplete(w.state.Step, &w.state.Draft) {
		return ErrValidationBlocked
	}

	if w.state.Step == finalizeStep && !w.state.Draft.Completed {
		code := generateConfirmationCode()
		record := w.buildBooking(code)
		if err := w.writer.CreateBooking(ctx, record); err != nil {
			w.logger.Warn("finalize: booking submission failed", zap.Error(err))
			return &SubmitError{Err: err}
		}
		w.state.Draft.ConfirmationCode = code
		w.state.Draft.Completed = true
		w.logger.Info("booking finalized",
			zap.String("code", code),
			zap.String("van", w.state.Draft.AssignedVan),
			zap.Float64("total", record.TotalPrice))
	}

	if w.state.Step < lastStep {
		w.state.Step++
	}
	return nil
}

// Retreat moves one step back. It is always allowed and never triggers
// side effects.
func (w *Wizard) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Step > 0 {
		w.state.Step--
	}
}

// UpdateDraft merges a partial update into the draft. It never validates.
// Changing the service selection recomputes the implied categories and the
// quote; changing the date recomputes the quote; changing the location
// re-runs dispatch, setting or clearing the assigned van.
func (w *Wizard) UpdateDraft(patch DraftPatch) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d := &w.state.Draft
	servicesChanged := false
	dateChanged := false
	locationChanged := false

	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.Services != nil {
		d.Services = dedupe(patch.Services)
		servicesChanged = true
	}
	if patch.ToggleService != nil {
		d.ToggleService(*patch.ToggleService)
		servicesChanged = true
	}
	if patch.Date != nil {
		d.Date = patch.Date
		dateChanged = true
	}
	if patch.Time != nil {
		d.Time = *patch.Time
	}
	if patch.StylistID != nil {
		d.StylistID = *patch.StylistID
	}
	if patch.Location != nil {
		d.Location = *patch.Location
		locationChanged = true
	}
	if patch.Address != nil {
		d.Address = *patch.Address
	}
	if patch.FullName != nil {
		d.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		d.Phone = *patch.Phone
	}
	if patch.Email != nil {
		d.Email = *patch.Email
	}
	if patch.Notes != nil {
		d.Notes = *patch.Notes
	}
	if patch.Payment != nil {
		d.Payment = *patch.Payment
	}

	if servicesChanged {
		w.recomputeCategories()
	}
	if servicesChanged || dateChanged {
		w.requote()
	}
	if locationChanged {
		w.redispatch()
	}
}

// ImpliedCategories returns the unique categories of the selected services.
func (w *Wizard) ImpliedCategories() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Categories
}

// CurrentQuote returns the latest computed quote.
func (w *Wizard) CurrentQuote() Quote {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Quote
}

func (w *Wizard) recomputeCategories() {
	var cats []string
	seen := make(map[string]bool)
	for _, title := range w.state.Draft.Services {
		svc, ok := w.catalog[title]
		if !ok || svc.Category == "" || seen[svc.Category] {
			continue
		}
		seen[svc.Category] = true
		cats = append(cats, svc.Category)
	}
	w.state.Categories = cats
}

func (w *Wizard) requote() {
	w.state.Quote = ComputeQuote(w.state.Draft.Services, w.state.Draft.Date, w.catalog, w.now())
	if len(w.state.Quote.Misses) > 0 {
		w.logger.Warn("pricing: selected services missing from catalog",
			zap.Strings("titles", w.state.Quote.Misses))
	}
}

// redispatch re-resolves the van for the current location. Re-selecting
// the same location repeats the same assignment; a location no van can
// serve clears it.
func (w *Wizard) redispatch() {
	if w.state.Draft.Location == "" {
		w.state.Draft.AssignedVan = ""
		return
	}
	van := w.resolver.Resolve(w.state.Draft.Location)
	if van == nil {
		w.logger.Warn("dispatch: no van available", zap.String("zone", w.state.Draft.Location))
		w.state.Draft.AssignedVan = ""
		return
	}
	w.state.Draft.AssignedVan = van.ID
}

func (w *Wizard) buildBooking(code string) *models.Booking {
	d := &w.state.Draft
	now := w.now()

	status := models.BookingPending
	if d.AssignedVan == "" {
		// Surfaced to the admin for manual assignment.
		status = models.BookingUnassigned
	}

	paymentStatus := models.PaymentStatusPending
	if d.Payment.Method == models.PaymentCash {
		paymentStatus = models.PaymentStatusNotPaid
	}

	var date string
	if d.Date != nil {
		date = d.Date.Format("2006-01-02")
	}

	return &models.Booking{
		ID:               uuid.New().String(),
		ConfirmationCode: code,
		Client:           d.FullName,
		Phone:            d.Phone,
		Email:            d.Email,
		Services:         append([]string(nil), d.Services...),
		Date:             date,
		Time:             d.Time,
		Location:         d.Location,
		Address:          d.Address,
		Notes:            d.Notes,
		Stylist:          d.StylistID,
		Van:              d.AssignedVan,
		PaymentMethod:    d.Payment.Method,
		PaymentStatus:    paymentStatus,
		ReceiptRef:       d.Payment.ReceiptRef,
		TotalPrice:       float64(w.state.Quote.DisplayTotal()),
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// generateConfirmationCode produces a "GV" prefixed 4-digit code.
// Collisions are not checked; uniqueness, when needed, is enforced by the
// persistence layer.
func generateConfirmationCode() string {
	return fmt.Sprintf("GV%d", 1000+rand.Intn(9000))
}

func dedupe(titles []string) []string {
	seen := make(map[string]bool, len(titles))
	out := titles[:0]
	for _, t := range titles {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
