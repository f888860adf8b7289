package booking

// Wizard steps, in order. Loyalty and RateExperience sit after
// Confirmation and are reachable only once the booking is completed.
const (
	StepServiceSelection = iota
	StepDateTime
	StepStylist
	StepLocation
	StepPersonalDetails
	StepPayment
	StepConfirmation
	StepLoyalty
	StepRateExperience
)

// StepNames maps step indices to display names.
var StepNames = []string{
	"Service Selection",
	"Date & Time",
	"Stylist",
	"Location",
	"Personal Details",
	"Payment",
	"Confirmation",
	"Loyalty Program",
	"Rate Experience",
}

// finalizeStep is the last pre-confirmation step: advancing from it
// submits the booking.
var finalizeStep = len(StepNames) - 4

const lastStep = StepRateExperience
