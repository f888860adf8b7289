package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"glamvan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var confirmationCodePattern = regexp.MustCompile(`^GV\d{4}$`)

// fakeWriter records created bookings and can be told to fail.
type fakeWriter struct {
	bookings []*models.Booking
	err      error
}

func (f *fakeWriter) CreateBooking(_ context.Context, b *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, b)
	return nil
}

func wizardCatalog() []models.Service {
	return []models.Service{
		{ID: "svc-1", Title: "Haircut & Styling", Category: models.CategoryHair, Price: "500"},
		{ID: "svc-2", Title: "Full Glam Makeup", Category: models.CategoryMakeup, Price: "650"},
		{ID: "svc-3", Title: "Bridal Package", Category: models.CategoryWedding, Price: "4,500", Link: "bridal-package", Specialty: models.CategoryWedding},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newTestWizard(writer BookingWriter, now time.Time) *Wizard {
	return NewWizard(wizardCatalog(), NewDispatchResolver(testFleet()), writer, WithClock(fixedClock(now)))
}

// fillToPayment walks the draft through every pre-payment step.
func fillToPayment(t *testing.T, w *Wizard, date time.Time) {
	ctx := context.Background()

	w.UpdateDraft(DraftPatch{Services: []string{"Haircut & Styling"}})
	require.NoError(t, w.Advance(ctx))

	w.UpdateDraft(DraftPatch{Date: timePtr(date), Time: strPtr("10:00 AM")})
	require.NoError(t, w.Advance(ctx))

	w.UpdateDraft(DraftPatch{StylistID: strPtr("sty-1")})
	require.NoError(t, w.Advance(ctx))

	w.UpdateDraft(DraftPatch{Location: strPtr("New Cairo"), Address: strPtr("123 Street 90")})
	require.NoError(t, w.Advance(ctx))

	w.UpdateDraft(DraftPatch{
		FullName: strPtr("Nour Hassan"),
		Phone:    strPtr("+201001234567"),
		Email:    strPtr("nour@example.com"),
	})
	require.NoError(t, w.Advance(ctx))

	require.Equal(t, StepPayment, w.CurrentStep())
}

func TestWizardFullFlowFinalizesBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	writer := &fakeWriter{}
	w := newTestWizard(writer, now)

	fillToPayment(t, w, today)
	w.UpdateDraft(DraftPatch{Payment: &models.PaymentSelection{Method: models.PaymentCash}})

	require.NoError(t, w.Advance(context.Background()))
	require.Len(t, writer.bookings, 1)

	b := writer.bookings[0]
	assert.Regexp(t, confirmationCodePattern, b.ConfirmationCode)
	assert.Equal(t, "VAN-001", b.Van)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.PaymentStatusNotPaid, b.PaymentStatus, "cash is settled on site")
	assert.Equal(t, 550.0, b.TotalPrice, "same-day surcharge applied")
	assert.Equal(t, "2026-09-01", b.Date)
	assert.Equal(t, "Nour Hassan", b.Client)

	state := w.State()
	assert.True(t, state.Draft.Completed)
	assert.Equal(t, b.ConfirmationCode, state.Draft.ConfirmationCode)
	assert.Equal(t, StepConfirmation, w.CurrentStep())
}

func TestWizardBlockedAdvance(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	err := w.Advance(context.Background())
	assert.ErrorIs(t, err, ErrValidationBlocked)
	assert.Equal(t, StepServiceSelection, w.CurrentStep(), "a refused advance is a no-op")
	assert.False(t, w.CanAdvance())
}

func TestWizardRetreatAlwaysAllowed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	w.UpdateDraft(DraftPatch{Services: []string{"Haircut & Styling"}})
	require.NoError(t, w.Advance(context.Background()))
	require.Equal(t, StepDateTime, w.CurrentStep())

	w.Retreat()
	assert.Equal(t, StepServiceSelection, w.CurrentStep())

	w.Retreat()
	assert.Equal(t, StepServiceSelection, w.CurrentStep(), "retreat at the first step stays put")
}

func TestWizardToggleService(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	w.UpdateDraft(DraftPatch{ToggleService: strPtr("Haircut & Styling")})
	assert.Equal(t, []string{"Haircut & Styling"}, w.State().Draft.Services)
	assert.Equal(t, []string{models.CategoryHair}, w.ImpliedCategories())

	w.UpdateDraft(DraftPatch{ToggleService: strPtr("Full Glam Makeup")})
	assert.Equal(t, []string{"Haircut & Styling", "Full Glam Makeup"}, w.State().Draft.Services)
	assert.ElementsMatch(t, []string{models.CategoryHair, models.CategoryMakeup}, w.ImpliedCategories())

	// Toggling again removes it.
	w.UpdateDraft(DraftPatch{ToggleService: strPtr("Haircut & Styling")})
	assert.Equal(t, []string{"Full Glam Makeup"}, w.State().Draft.Services)
	assert.Equal(t, []string{models.CategoryMakeup}, w.ImpliedCategories())
}

func TestWizardLocationChangeRedispatches(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	w.UpdateDraft(DraftPatch{Location: strPtr("Sheikh Zayed")})
	assert.Equal(t, "VAN-002", w.State().Draft.AssignedVan)

	w.UpdateDraft(DraftPatch{Location: strPtr("El Rehab")})
	assert.Equal(t, "VAN-001", w.State().Draft.AssignedVan)

	// Re-selecting the same location repeats the same assignment.
	w.UpdateDraft(DraftPatch{Location: strPtr("El Rehab")})
	assert.Equal(t, "VAN-001", w.State().Draft.AssignedVan)
}

func TestWizardVanClearedWhenFleetUnavailable(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	fleet := testFleet()
	fleet[0].Status = models.VanBusy
	fleet[1].Status = models.VanMaintenance
	w := NewWizard(wizardCatalog(), NewDispatchResolver(fleet), &fakeWriter{}, WithClock(fixedClock(now)))

	w.UpdateDraft(DraftPatch{Location: strPtr("New Cairo")})
	assert.Empty(t, w.State().Draft.AssignedVan)
}

func TestWizardUnassignedBookingStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 7)
	fleet := testFleet()
	fleet[0].Status = models.VanBusy
	fleet[1].Status = models.VanBusy
	writer := &fakeWriter{}
	w := NewWizard(wizardCatalog(), NewDispatchResolver(fleet), writer, WithClock(fixedClock(now)))

	fillToPayment(t, w, future)
	w.UpdateDraft(DraftPatch{Payment: &models.PaymentSelection{Method: models.PaymentCash}})
	require.NoError(t, w.Advance(context.Background()))

	require.Len(t, writer.bookings, 1)
	assert.Equal(t, models.BookingUnassigned, writer.bookings[0].Status)
	assert.Empty(t, writer.bookings[0].Van)
}

func TestWizardSubmitFailureLeavesDraftForRetry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 7)
	writer := &fakeWriter{err: errors.New("mongo: connection reset")}
	w := newTestWizard(writer, now)

	fillToPayment(t, w, future)
	w.UpdateDraft(DraftPatch{Payment: &models.PaymentSelection{Method: models.PaymentCash}})
	before := w.State()

	err := w.Advance(context.Background())
	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)

	after := w.State()
	assert.Equal(t, before.Step, after.Step)
	assert.Equal(t, before.Draft, after.Draft, "a failed submission changes nothing")
	assert.False(t, after.Draft.Completed)
	assert.Empty(t, after.Draft.ConfirmationCode)

	// The same advance succeeds once the writer recovers.
	writer.err = nil
	require.NoError(t, w.Advance(context.Background()))
	require.Len(t, writer.bookings, 1)
	assert.True(t, w.State().Draft.Completed)
	assert.Equal(t, StepConfirmation, w.CurrentStep())
}

func TestWizardNonCashPaymentStatusPending(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 7)
	writer := &fakeWriter{}
	w := newTestWizard(writer, now)

	fillToPayment(t, w, future)
	w.UpdateDraft(DraftPatch{Payment: &models.PaymentSelection{
		Method:     models.PaymentInstaPay,
		ReceiptRef: "glamvan/receipts/txn-991",
	}})
	require.NoError(t, w.Advance(context.Background()))

	require.Len(t, writer.bookings, 1)
	b := writer.bookings[0]
	assert.Equal(t, models.PaymentStatusPending, b.PaymentStatus)
	assert.Equal(t, "glamvan/receipts/txn-991", b.ReceiptRef)
	assert.Equal(t, models.PaymentInstaPay, b.PaymentMethod)
}

func TestWizardAbandonNeverWrites(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 7)
	writer := &fakeWriter{}
	w := newTestWizard(writer, now)

	fillToPayment(t, w, future)
	w.UpdateDraft(DraftPatch{Payment: &models.PaymentSelection{Method: models.PaymentCash}})
	// The session is dropped here without advancing past Payment.

	assert.Empty(t, writer.bookings)
}

func TestWizardFinalizeDoesNotRepeat(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 7)
	writer := &fakeWriter{}
	w := newTestWizard(writer, now)

	fillToPayment(t, w, future)
	w.UpdateDraft(DraftPatch{Payment: &models.PaymentSelection{Method: models.PaymentCash}})
	require.NoError(t, w.Advance(context.Background()))
	require.NoError(t, w.Advance(context.Background()))
	require.NoError(t, w.Advance(context.Background()))

	assert.Len(t, writer.bookings, 1, "finalize happens exactly once")
	assert.Equal(t, StepRateExperience, w.CurrentStep())

	// Advancing from the last step stays put.
	require.NoError(t, w.Advance(context.Background()))
	assert.Equal(t, StepRateExperience, w.CurrentStep())
}

func TestWizardPreselectByAlias(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	w.Preselect("bridal")
	state := w.State()
	assert.Equal(t, []string{"Bridal Package"}, state.Draft.Services)
	assert.Equal(t, models.CategoryWedding, state.Draft.Category)
	assert.Equal(t, 4500.0, state.Quote.Total)
}

func TestWizardPreselectByLink(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	w.Preselect("bridal-package")
	assert.Equal(t, []string{"Bridal Package"}, w.State().Draft.Services)
}

func TestWizardPreselectUnknownParamIsNoop(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	w.Preselect("no-such-service")
	assert.Empty(t, w.State().Draft.Services)
}

func TestWizardDateChangeRequotes(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)

	w.UpdateDraft(DraftPatch{Services: []string{"Haircut & Styling"}})
	assert.Equal(t, 500.0, w.CurrentQuote().Total)

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	w.UpdateDraft(DraftPatch{Date: timePtr(today)})
	q := w.CurrentQuote()
	assert.True(t, q.SurchargeApplied)
	assert.Equal(t, 550, q.DisplayTotal())

	future := now.AddDate(0, 0, 5)
	w.UpdateDraft(DraftPatch{Date: timePtr(future)})
	q = w.CurrentQuote()
	assert.False(t, q.SurchargeApplied)
	assert.Equal(t, 500, q.DisplayTotal())
}

func TestWizardStateRestoredFromSnapshot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	w := newTestWizard(&fakeWriter{}, now)
	w.UpdateDraft(DraftPatch{Services: []string{"Haircut & Styling"}})
	require.NoError(t, w.Advance(context.Background()))
	saved := w.State()

	restored := NewWizard(wizardCatalog(), NewDispatchResolver(testFleet()), &fakeWriter{},
		WithClock(fixedClock(now)), WithState(saved))
	assert.Equal(t, saved, restored.State())
	assert.Equal(t, StepDateTime, restored.CurrentStep())
}
