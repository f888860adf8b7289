package models

// Service categories offered by the platform.
const (
	CategoryHair    = "hair"
	CategoryMakeup  = "makeup"
	CategoryNails   = "nails"
	CategoryLashes  = "lashes"
	CategoryWedding = "wedding"
)

// Service represents a catalog entry. Entries are loaded once per booking
// session and never mutated by the booking engine.
type Service struct {
	ID          string `bson:"id" json:"id"`
	Category    string `bson:"category" json:"category"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Price       string `bson:"price" json:"price"` // price expression, e.g. "500" or "1,200"
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	Link        string `bson:"link,omitempty" json:"link,omitempty"`
	Specialty   string `bson:"specialty,omitempty" json:"specialty,omitempty"` // specialty tag required of a stylist
}

// TimeSlots is the fixed set of bookable time slot tokens.
var TimeSlots = []string{
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

// IsValidTimeSlot reports whether t is one of the fixed slot tokens.
func IsValidTimeSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}
