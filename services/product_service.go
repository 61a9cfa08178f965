package services

import (
	"context"
	"fmt"

	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/repository"
	"go.uber.org/zap"
)

// ProductService manages marketplace products.
type ProductService struct {
	products repository.ProductRepo
	logger   *zap.Logger
}

func NewProductService(products repository.ProductRepo, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// List returns every product as a localized view.
func (s *ProductService) List(ctx context.Context, loc models.Locale) ([]models.ProductView, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		views = append(views, products[i].Localize(loc))
	}
	return views, nil
}

// Create stores a new product, filling defaults for currency and
// status the same way the admin tooling expects.
func (s *ProductService) Create(ctx context.Context, req *models.CreateProductRequest) (string, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	status := req.Status
	if status == "" {
		status = "active"
	}

	p := &models.Product{
		SKU:           req.SKU,
		TitleEN:       req.TitleEN,
		TitleZH:       req.TitleZH,
		DescriptionEN: req.DescriptionEN,
		DescriptionZH: req.DescriptionZH,
		Price:         req.Price,
		Currency:      currency,
		Categories:    req.Categories,
		MediaURLs:     req.MediaURLs,
		Attributes:    req.Attributes,
		Status:        status,
	}

	id, err := s.products.Create(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}

	s.logger.Info("product created", zap.String("id", id), zap.String("sku", req.SKU))
	return id, nil
}
