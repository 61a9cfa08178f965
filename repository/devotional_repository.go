package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanctuary-builder/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DevotionalRepository implements DevotionalRepo over MongoDB.
type DevotionalRepository struct {
	collection *mongo.Collection
}

func NewDevotionalRepository(db *mongo.Database) *DevotionalRepository {
	return &DevotionalRepository{collection: db.Collection(CollectionDevotional)}
}

func (r *DevotionalRepository) Create(ctx context.Context, d *models.Devotional) (string, error) {
	res, err := r.collection.InsertOne(ctx, d)
	if err != nil {
		return "", fmt.Errorf("insert devotional: %w", err)
	}
	return insertedHex(res)
}

func (r *DevotionalRepository) FindByDay(ctx context.Context, day string) (*models.Devotional, error) {
	var d models.Devotional
	err := r.collection.FindOne(ctx, bson.M{"day": day}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find devotional by day: %w", err)
	}
	return &d, nil
}

// insertedHex converts an InsertOne result into the opaque string ID
// handed back to clients.
func insertedHex(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
