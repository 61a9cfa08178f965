package repository

import (
	"context"
	"fmt"

	"github.com/sanctuary-builder/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RewardRepository implements RewardRepo over MongoDB.
type RewardRepository struct {
	collection *mongo.Collection
}

func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{collection: db.Collection(CollectionReward)}
}

func (r *RewardRepository) Create(ctx context.Context, reward *models.Reward) (string, error) {
	res, err := r.collection.InsertOne(ctx, reward)
	if err != nil {
		return "", fmt.Errorf("insert reward: %w", err)
	}
	return insertedHex(res)
}

func (r *RewardRepository) FindByUser(ctx context.Context, userID string) ([]models.Reward, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find rewards for user: %w", err)
	}
	defer cursor.Close(ctx)

	var rewards []models.Reward
	if err := cursor.All(ctx, &rewards); err != nil {
		return nil, fmt.Errorf("decode rewards: %w", err)
	}
	return rewards, nil
}

func (r *RewardRepository) ExistsByType(ctx context.Context, userID, rewardType string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"user_id":     userID,
		"reward_type": rewardType,
	})
	if err != nil {
		return false, fmt.Errorf("count rewards: %w", err)
	}
	return count > 0, nil
}
