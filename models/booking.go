package models

import "time"

// Booking lifecycle statuses.
const (
	BookingUnassigned = "unassigned"
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// Payment statuses tracked on a booking.
const (
	PaymentStatusPaid     = "paid"
	PaymentStatusPending  = "pending"
	PaymentStatusNotPaid  = "not paid"
	PaymentStatusRefunded = "refunded"
)

// Booking is the persisted record created when a wizard session finalizes.
// After creation it is mutated only through the admin surface.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	ConfirmationCode string    `bson:"confirmation_code" json:"confirmationCode"`
	Client           string    `bson:"client" json:"client"`
	Phone            string    `bson:"phone" json:"phone"`
	Email            string    `bson:"email" json:"email"`
	Services         []string  `bson:"services" json:"services"`
	Date             string    `bson:"date" json:"date"` // "2006-01-02"
	Time             string    `bson:"time" json:"time"`
	Location         string    `bson:"location" json:"location"`
	Address          string    `bson:"address" json:"address"`
	Notes            string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Stylist          string    `bson:"stylist,omitempty" json:"stylist,omitempty"`
	Van              string    `bson:"van,omitempty" json:"van,omitempty"`
	PaymentMethod    string    `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus    string    `bson:"payment_status" json:"paymentStatus"`
	ReceiptRef       string    `bson:"receipt_ref,omitempty" json:"receiptRef,omitempty"`
	TotalPrice       float64   `bson:"total_price" json:"totalPrice"`
	Status           string    `bson:"status" json:"status"`
	RatingStars      int       `bson:"rating_stars,omitempty" json:"ratingStars,omitempty"`
	RatingComment    string    `bson:"rating_comment,omitempty" json:"ratingComment,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// CanTransition reports whether a booking may move from one lifecycle
// status to another via the admin surface.
func CanTransition(from, to string) bool {
	switch from {
	case BookingUnassigned:
		return to == BookingPending || to == BookingCancelled
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	default:
		return false
	}
}
