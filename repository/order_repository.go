package repository

import (
	"context"
	"fmt"

	"github.com/sanctuary-builder/backend/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository implements OrderRepo over MongoDB.
type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{collection: db.Collection(CollectionOrder)}
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) (string, error) {
	res, err := r.collection.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return insertedHex(res)
}
