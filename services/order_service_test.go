package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockOrderRepo struct {
	createErr error
	created   []models.Order
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.created = append(m.created, *o)
	return "507f1f77bcf86cd799439020", nil
}

func f(v float64) *float64 { return &v }

// ---- ComputeTotal ----

func TestComputeTotal_Basic(t *testing.T) {
	items := []models.LineItem{
		{SKU: "book-1", Qty: f(2), Price: f(4.50)},
		{SKU: "card-1", Qty: f(1), Price: f(1.25)},
	}

	assert.Equal(t, 10.25, services.ComputeTotal(items))
}

func TestComputeTotal_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, services.ComputeTotal(nil))
	assert.Equal(t, 0.0, services.ComputeTotal([]models.LineItem{}))
}

func TestComputeTotal_MissingQtyDefaultsToOne(t *testing.T) {
	items := []models.LineItem{{SKU: "book-1", Price: f(3.99)}}

	assert.Equal(t, 3.99, services.ComputeTotal(items))
}

func TestComputeTotal_MissingPriceDefaultsToZero(t *testing.T) {
	items := []models.LineItem{{SKU: "book-1", Qty: f(5)}}

	assert.Equal(t, 0.0, services.ComputeTotal(items))
}

func TestComputeTotal_RoundsHalfAwayFromZero(t *testing.T) {
	// math.Round rounds half away from zero: 2 × 3.005 → 6.01.
	items := []models.LineItem{{SKU: "book-1", Qty: f(2), Price: f(3.005)}}

	assert.Equal(t, 6.01, services.ComputeTotal(items))
}

func TestComputeTotal_RoundsToTwoDecimals(t *testing.T) {
	items := []models.LineItem{
		{SKU: "a", Qty: f(3), Price: f(0.10)},
		{SKU: "b", Qty: f(1), Price: f(0.033)},
	}

	assert.Equal(t, 0.33, services.ComputeTotal(items))
}

// ---- CreateOrder ----

func TestCreateOrder_PersistsComputedTotal(t *testing.T) {
	repo := &mockOrderRepo{}
	logger, _ := zap.NewDevelopment()
	svc := services.NewOrderService(repo, logger)

	req := &models.CreateOrderRequest{
		UserID: "u1",
		Items: []models.LineItem{
			{SKU: "book-1", Qty: f(2), Price: f(4.50)},
		},
	}
	result, err := svc.CreateOrder(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 9.00, result.TotalAmount)
	assert.NotEmpty(t, result.ID)

	assert.Len(t, repo.created, 1)
	order := repo.created[0]
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 9.00, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, services.DefaultCurrency, order.Currency)
}

func TestCreateOrder_KeepsRequestedCurrency(t *testing.T) {
	repo := &mockOrderRepo{}
	logger, _ := zap.NewDevelopment()
	svc := services.NewOrderService(repo, logger)

	req := &models.CreateOrderRequest{
		UserID:   "u1",
		Items:    []models.LineItem{{SKU: "book-1", Qty: f(1), Price: f(10)}},
		Currency: "CNY",
	}
	_, err := svc.CreateOrder(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "CNY", repo.created[0].Currency)
}

func TestCreateOrder_StoreError(t *testing.T) {
	repo := &mockOrderRepo{createErr: errors.New("mongo down")}
	logger, _ := zap.NewDevelopment()
	svc := services.NewOrderService(repo, logger)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		UserID: "u1",
		Items:  []models.LineItem{{SKU: "book-1", Qty: f(1), Price: f(10)}},
	})

	assert.Error(t, err)
}
