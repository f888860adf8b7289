// File: database/repository/booking/booking.go
package bookingRepo

import (
	"context"
	"time"

	"glamvan/database"
	"glamvan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// CreateBooking inserts a finalized booking record.
	CreateBooking(ctx context.Context, b *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByConfirmationCode retrieves a booking by its confirmation code.
	GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// UpdateStatus moves a booking to a new lifecycle status.
	UpdateStatus(ctx context.Context, id, status string) error
	// UpdatePaymentStatus updates a booking's payment status.
	UpdatePaymentStatus(ctx context.Context, id, status string) error
	// Reassign updates the van and/or stylist assignment.
	Reassign(ctx context.Context, id, van, stylist string) error
	// SetRating records an experience rating against a confirmation code.
	SetRating(ctx context.Context, code string, stars int, comment string) error
	// CountByEmailAndStatus counts a client's bookings in a given status.
	CountByEmailAndStatus(ctx context.Context, email, status string) (int, error)
}

// MongoBookingRepo implements BookingRepository over MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Database().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}
	repo.ensureIndexes()
	return repo
}

func (r *MongoBookingRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "confirmation_code", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "status", Value: 1}}},
	}
	// Index failures are non-fatal; lookups degrade to collection scans.
	r.coll.Indexes().CreateMany(ctx, indexes)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}
