package models

// Stylist availability statuses.
const (
	StylistAvailable = "available"
	StylistBusy      = "busy"
	StylistOff       = "off"
)

// Stylist is a service professional. The engine filters stylists by
// specialty against the categories implied by the selected services and
// never mutates stylist state.
type Stylist struct {
	ID                string   `bson:"id" json:"id"`
	Name              string   `bson:"name" json:"name"`
	Specialties       []string `bson:"specialties" json:"specialties"`
	Status            string   `bson:"status" json:"status"`
	Experience        string   `bson:"experience,omitempty" json:"experience,omitempty"`
	Rating            float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	Phone             string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Image             string   `bson:"image,omitempty" json:"image,omitempty"`
	WorkZones         []string `bson:"work_zones,omitempty" json:"workZones,omitempty"`
	BookingsCompleted int      `bson:"bookings_completed,omitempty" json:"bookingsCompleted,omitempty"`
}

// HasSpecialty reports whether the stylist carries the given specialty tag.
func (s *Stylist) HasSpecialty(tag string) bool {
	for _, sp := range s.Specialties {
		if sp == tag {
			return true
		}
	}
	return false
}
