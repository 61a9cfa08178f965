package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/services"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Create computes the total and persists a pending order.
// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, err := oc.service.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, result)
}
