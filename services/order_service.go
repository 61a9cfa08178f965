package services

import (
	"context"
	"fmt"
	"math"

	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/repository"
	"go.uber.org/zap"
)

// DefaultCurrency is applied when an order doesn't name one.
const DefaultCurrency = "USD"

// ComputeTotal sums qty×price over the line items and rounds to cents.
// A missing qty counts as 1, a missing price as 0; non-numeric values
// never reach here because JSON binding rejects them upstream.
// Rounding is half away from zero (math.Round), so 2 × 3.005 → 6.01.
func ComputeTotal(items []models.LineItem) float64 {
	var total float64
	for _, item := range items {
		qty := 1.0
		if item.Qty != nil {
			qty = *item.Qty
		}
		price := 0.0
		if item.Price != nil {
			price = *item.Price
		}
		total += qty * price
	}
	return roundCents(total)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// OrderService creates orders with computed totals.
type OrderService struct {
	orders repository.OrderRepo
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepo, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// OrderResult is returned after creating an order.
type OrderResult struct {
	ID          string  `json:"id"`
	TotalAmount float64 `json:"total_amount"`
}

// CreateOrder computes the total for the requested items and persists
// a pending order.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*OrderResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	order := &models.Order{
		UserID:      req.UserID,
		Items:       req.Items,
		TotalAmount: ComputeTotal(req.Items),
		Currency:    currency,
		Status:      models.OrderStatusPending,
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		zap.String("order_id", id),
		zap.String("user_id", req.UserID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.String("currency", currency),
		zap.Int("items", len(req.Items)),
	)

	return &OrderResult{ID: id, TotalAmount: order.TotalAmount}, nil
}
