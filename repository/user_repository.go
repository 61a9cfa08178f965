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

// UserRepository implements UserRepo over MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(CollectionUser)}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) (string, error) {
	res, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return insertedHex(res)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed IDs can't match anything.
		return nil, ErrNotFound
	}

	var u models.User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}
