// File: database/repository/catalog/catalog.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"glamvan/database"
	"glamvan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository reads the service catalog. The catalog is managed
// outside the booking engine; the engine only consumes snapshots.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListByCategory(ctx context.Context, category string) ([]models.Service, error)
}

// MongoCatalogRepo implements CatalogRepository over MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{coll: database.Database().Collection("services")}
}

// ListServices retrieves the full service catalog.
func (r *MongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return r.find(ctx, bson.M{})
}

// ListByCategory retrieves the catalog entries of a single category.
func (r *MongoCatalogRepo) ListByCategory(ctx context.Context, category string) ([]models.Service, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *MongoCatalogRepo) find(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}
