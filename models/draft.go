package models

import "time"

// BookingDraft is the mutable aggregate assembled step by step by the
// booking wizard. It lives only inside a wizard session; a successful
// finalize converts it into a persisted Booking record.
type BookingDraft struct {
	Category         string           `json:"category"`
	Services         []string         `json:"services"`
	Date             *time.Time       `json:"date,omitempty"`
	Time             string           `json:"time"`
	StylistID        string           `json:"stylistId"`
	Location         string           `json:"location"`
	Address          string           `json:"address"`
	FullName         string           `json:"fullName"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Notes            string           `json:"notes"`
	Payment          PaymentSelection `json:"payment"`
	AssignedVan      string           `json:"assignedVan,omitempty"`
	ConfirmationCode string           `json:"confirmationCode,omitempty"`
	Completed        bool             `json:"completed"`
}

// HasService reports whether title is currently selected.
func (d *BookingDraft) HasService(title string) bool {
	for _, s := range d.Services {
		if s == title {
			return true
		}
	}
	return false
}

// ToggleService adds title to the selection, or removes it if already
// selected. Selection keeps insertion order and never holds duplicates.
func (d *BookingDraft) ToggleService(title string) {
	for i, s := range d.Services {
		if s == title {
			d.Services = append(d.Services[:i], d.Services[i+1:]...)
			return
		}
	}
	d.Services = append(d.Services, title)
}
