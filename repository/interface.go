package repository

import (
	"context"
	"errors"

	"github.com/sanctuary-builder/backend/models"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Collection names, lowercase of the model name as in the original
// data set.
const (
	CollectionUser       = "user"
	CollectionDevotional = "devotional"
	CollectionProgress   = "progress"
	CollectionReward     = "reward"
	CollectionProduct    = "product"
	CollectionOrder      = "order"
)

// CollectionNames lists every collection the service owns, for the
// admin schema endpoint.
func CollectionNames() []string {
	return []string{
		CollectionUser,
		CollectionDevotional,
		CollectionProgress,
		CollectionReward,
		CollectionProduct,
		CollectionOrder,
	}
}

// DevotionalRepo is the data access surface for devotionals.
// Interfaces use plain Go types (no mongo-driver types) so services can
// be tested against in-memory doubles.
type DevotionalRepo interface {
	Create(ctx context.Context, d *models.Devotional) (string, error)
	FindByDay(ctx context.Context, day string) (*models.Devotional, error)
}

// ProgressRepo is the data access surface for completion records.
type ProgressRepo interface {
	Create(ctx context.Context, p *models.Progress) (string, error)
	FindByUser(ctx context.Context, userID string) ([]models.Progress, error)
}

// RewardRepo is the data access surface for earned rewards.
type RewardRepo interface {
	Create(ctx context.Context, r *models.Reward) (string, error)
	FindByUser(ctx context.Context, userID string) ([]models.Reward, error)
	ExistsByType(ctx context.Context, userID, rewardType string) (bool, error)
}

// ProductRepo is the data access surface for marketplace products.
type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) (string, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

// OrderRepo is the data access surface for orders.
type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) (string, error)
}

// UserRepo is the data access surface for user profiles.
type UserRepo interface {
	Create(ctx context.Context, u *models.User) (string, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}
