package models

// Order statuses. Status is the only field expected to change after
// creation.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusRefunded  = "refunded"
	OrderStatusCancelled = "cancelled"
)

// LineItem is a single sku/quantity/price triple inside an order.
// Qty and Price are pointers so a missing field is distinguishable from
// zero: missing qty defaults to 1, missing price defaults to 0.
type LineItem struct {
	SKU   string   `json:"sku" bson:"sku" binding:"required"`
	Qty   *float64 `json:"qty,omitempty" bson:"qty,omitempty" binding:"omitempty,gte=0"`
	Price *float64 `json:"price,omitempty" bson:"price,omitempty" binding:"omitempty,gte=0"`
}

// Order is a persisted order for digital goods.
// Collection: order
type Order struct {
	UserID      string     `json:"user_id" bson:"user_id"`
	Items       []LineItem `json:"items" bson:"items"`
	TotalAmount float64    `json:"total_amount" bson:"total_amount"`
	Currency    string     `json:"currency" bson:"currency"`
	Status      string     `json:"status" bson:"status"`
}

// CreateOrderRequest is the payload for POST /api/orders. The items
// field itself is required; an empty list is a valid order with a
// 0.00 total.
type CreateOrderRequest struct {
	UserID   string     `json:"user_id" binding:"required"`
	Items    []LineItem `json:"items" binding:"required,dive"`
	Currency string     `json:"currency"`
}
