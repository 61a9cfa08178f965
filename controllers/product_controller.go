package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/services"
)

// ProductController handles HTTP requests for marketplace products.
type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List returns all products localized.
// GET /api/products?locale=en
func (pc *ProductController) List(c *gin.Context) {
	loc, ok := localeFromQuery(c)
	if !ok {
		return
	}

	products, err := pc.service.List(c.Request.Context(), loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Create stores a new product.
// POST /api/products
func (pc *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	id, err := pc.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
