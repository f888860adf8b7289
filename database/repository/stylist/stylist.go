// File: database/repository/stylist/stylist.go
package stylistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glamvan/database"
	"glamvan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStylistNotFound is returned when no stylist matches the lookup.
var ErrStylistNotFound = errors.New("stylist not found")

// StylistRepository defines methods for stylist data access.
type StylistRepository interface {
	ListStylists(ctx context.Context) ([]models.Stylist, error)
	GetByID(ctx context.Context, id string) (*models.Stylist, error)
	Create(ctx context.Context, s *models.Stylist) error
	Update(ctx context.Context, s *models.Stylist) error
	Delete(ctx context.Context, id string) error
}

// MongoStylistRepo implements StylistRepository over MongoDB.
type MongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoStylistRepo creates a new instance of StylistRepository using MongoDB.
func NewMongoStylistRepo() StylistRepository {
	coll := database.Database().Collection("stylists")
	repo := &MongoStylistRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "specialties", Value: 1}},
	})
	return repo
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

// ListStylists retrieves the full stylist roster.
func (r *MongoStylistRepo) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list stylists: %w", err)
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, fmt.Errorf("failed to decode stylists: %w", err)
	}
	return stylists, nil
}

// GetByID retrieves a stylist by their unique ID.
func (r *MongoStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var s models.Stylist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stylist %s: %w", id, err)
	}
	return &s, nil
}

// Create inserts a new stylist record.
func (r *MongoStylistRepo) Create(ctx context.Context, s *models.Stylist) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create stylist: %w", err)
	}
	return nil
}

// Update modifies an existing stylist record.
func (r *MongoStylistRepo) Update(ctx context.Context, s *models.Stylist) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": s.ID}, bson.M{"$set": s})
	if err != nil {
		return fmt.Errorf("failed to update stylist %s: %w", s.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrStylistNotFound
	}
	return nil
}

// Delete removes a stylist record by its ID.
func (r *MongoStylistRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete stylist %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrStylistNotFound
	}
	return nil
}
