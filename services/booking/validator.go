package booking

import "glamvan/models"

// StepComplete reports whether the draft satisfies the completion rule of
// the given step, i.e. whether the wizard may advance from it. It is a
// pure function and total over step indices: steps past Payment, and any
// unknown index, never block.
func StepComplete(step int, draft *models.BookingDraft) bool {
	switch step {
	case StepServiceSelection:
		return len(draft.Services) > 0
	case StepDateTime:
		return draft.Date != nil && draft.Time != ""
	case StepStylist:
		return draft.StylistID != ""
	case StepLocation:
		return draft.Location != "" && draft.Address != ""
	case StepPersonalDetails:
		return draft.FullName != "" && draft.Phone != "" && draft.Email != ""
	case StepPayment:
		return draft.Payment.Complete()
	default:
		return true
	}
}
