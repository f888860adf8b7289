// File: database/repository/promotion/promotion.go
package promotionRepo

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

// ErrPromotionNotFound is returned when no promotion matches the lookup.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository defines methods for promotion data access.
type PromotionRepository interface {
	ListPromotions(ctx context.Context) ([]models.Promotion, error)
	GetByCode(ctx context.Context, code string) (*models.Promotion, error)
	Create(ctx context.Context, p *models.Promotion) error
	Update(ctx context.Context, p *models.Promotion) error
	Delete(ctx context.Context, id string) error
}

// MongoPromotionRepo implements PromotionRepository over MongoDB.
type MongoPromotionRepo struct {
	coll *mongo.Collection
}

// NewMongoPromotionRepo creates a new instance of PromotionRepository using MongoDB.
func NewMongoPromotionRepo() PromotionRepository {
	return &MongoPromotionRepo{coll: database.Database().Collection("promotions")}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

// ListPromotions retrieves all promotions.
func (r *MongoPromotionRepo) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	defer cursor.Close(ctx)

	var promos []models.Promotion
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, fmt.Errorf("failed to decode promotions: %w", err)
	}
	return promos, nil
}

// GetByCode retrieves a promotion by its code.
func (r *MongoPromotionRepo) GetByCode(ctx context.Context, code string) (*models.Promotion, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var p models.Promotion
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch promotion %s: %w", code, err)
	}
	return &p, nil
}

// Create inserts a new promotion.
func (r *MongoPromotionRepo) Create(ctx context.Context, p *models.Promotion) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// Update modifies an existing promotion.
func (r *MongoPromotionRepo) Update(ctx context.Context, p *models.Promotion) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update promotion %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrPromotionNotFound
	}
	return nil
}

// Delete removes a promotion by its ID.
func (r *MongoPromotionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete promotion %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrPromotionNotFound
	}
	return nil
}
