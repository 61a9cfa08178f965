package repository

import (
	"context"
	"fmt"

	"github.com/sanctuary-builder/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepository implements ProductRepo over MongoDB.
type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection(CollectionProduct)}
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (string, error) {
	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	return insertedHex(res)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
