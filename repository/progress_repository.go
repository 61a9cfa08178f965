package repository

import (
	"context"
	"fmt"

	"github.com/sanctuary-builder/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProgressRepository implements ProgressRepo over MongoDB. Completion
// records are append-only; duplicates for the same user+day are
// allowed and handled by the stats computation.
type ProgressRepository struct {
	collection *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{collection: db.Collection(CollectionProgress)}
}

func (r *ProgressRepository) Create(ctx context.Context, p *models.Progress) (string, error) {
	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return "", fmt.Errorf("insert progress: %w", err)
	}
	return insertedHex(res)
}

// FindByUser returns the user's records in insertion order. Callers
// that need date order sort themselves.
func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find progress for user: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Progress
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode progress records: %w", err)
	}
	return records, nil
}
