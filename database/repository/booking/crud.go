// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glamvan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBookingNotFound is returned when no booking matches the lookup.
var ErrBookingNotFound = errors.New("booking not found")

// CreateBooking inserts a finalized booking record.
func (r *MongoBookingRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByConfirmationCode retrieves a booking by its confirmation code.
func (r *MongoBookingRepo) GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"confirmation_code": code})
}

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &b, nil
}

// GetAll retrieves all bookings, newest first.
func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking to a new lifecycle status.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.updateSet(ctx, bson.M{"id": id}, bson.M{"status": status})
}

// UpdatePaymentStatus updates a booking's payment status.
func (r *MongoBookingRepo) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	return r.updateSet(ctx, bson.M{"id": id}, bson.M{"payment_status": status})
}

// Reassign updates the van and/or stylist assignment. Empty values leave
// the current assignment untouched.
func (r *MongoBookingRepo) Reassign(ctx context.Context, id, van, stylist string) error {
	set := bson.M{}
	if van != "" {
		set["van"] = van
	}
	if stylist != "" {
		set["stylist"] = stylist
	}
	if len(set) == 0 {
		return nil
	}
	return r.updateSet(ctx, bson.M{"id": id}, set)
}

// SetRating records an experience rating against a confirmation code.
func (r *MongoBookingRepo) SetRating(ctx context.Context, code string, stars int, comment string) error {
	return r.updateSet(ctx, bson.M{"confirmation_code": code}, bson.M{
		"rating_stars":   stars,
		"rating_comment": comment,
	})
}

// CountByEmailAndStatus counts a client's bookings in a given status.
func (r *MongoBookingRepo) CountByEmailAndStatus(ctx context.Context, email, status string) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email, "status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return int(n), nil
}

func (r *MongoBookingRepo) updateSet(ctx context.Context, filter, set bson.M) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
