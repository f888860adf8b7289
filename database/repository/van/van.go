// File: database/repository/van/van.go
package vanRepo

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

// ErrVanNotFound is returned when no van matches the lookup.
var ErrVanNotFound = errors.New("van not found")

// VanRepository defines methods for van fleet data access.
type VanRepository interface {
	ListVans(ctx context.Context) ([]models.Van, error)
	GetByID(ctx context.Context, id string) (*models.Van, error)
	Create(ctx context.Context, v *models.Van) error
	Update(ctx context.Context, v *models.Van) error
	Delete(ctx context.Context, id string) error
}

// MongoVanRepo implements VanRepository over MongoDB.
type MongoVanRepo struct {
	coll *mongo.Collection
}

// NewMongoVanRepo creates a new instance of VanRepository using MongoDB.
func NewMongoVanRepo() VanRepository {
	return &MongoVanRepo{coll: database.Database().Collection("vans")}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

// ListVans retrieves the full fleet in stable insertion order, which keeps
// dispatch resolution deterministic for a given fleet state.
func (r *MongoVanRepo) ListVans(ctx context.Context) ([]models.Van, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list vans: %w", err)
	}
	defer cursor.Close(ctx)

	var vans []models.Van
	if err := cursor.All(ctx, &vans); err != nil {
		return nil, fmt.Errorf("failed to decode vans: %w", err)
	}
	return vans, nil
}

// GetByID retrieves a van by its unique ID.
func (r *MongoVanRepo) GetByID(ctx context.Context, id string) (*models.Van, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var v models.Van
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, ErrVanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch van %s: %w", id, err)
	}
	return &v, nil
}

// Create inserts a new van record.
func (r *MongoVanRepo) Create(ctx context.Context, v *models.Van) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to create van: %w", err)
	}
	return nil
}

// Update modifies an existing van record.
func (r *MongoVanRepo) Update(ctx context.Context, v *models.Van) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": v.ID}, bson.M{"$set": v})
	if err != nil {
		return fmt.Errorf("failed to update van %s: %w", v.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrVanNotFound
	}
	return nil
}

// Delete removes a van record by its ID.
func (r *MongoVanRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete van %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrVanNotFound
	}
	return nil
}
