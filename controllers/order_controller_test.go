package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sanctuary-builder/backend/controllers"
	"github.com/sanctuary-builder/backend/models"
	"github.com/sanctuary-builder/backend/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubOrderRepo struct {
	created []models.Order
}

func (s *stubOrderRepo) Create(_ context.Context, o *models.Order) (string, error) {
	s.created = append(s.created, *o)
	return "507f1f77bcf86cd799439020", nil
}

func newOrderRouter(repo *stubOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()
	svc := services.NewOrderService(repo, logger)
	ctrl := controllers.NewOrderController(svc)

	r := gin.New()
	r.POST("/api/orders", ctrl.Create)
	return r
}

func postOrder(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_ReturnsIDAndTotal(t *testing.T) {
	repo := &stubOrderRepo{}
	r := newOrderRouter(repo)

	w := postOrder(r, `{"user_id":"u1","items":[{"sku":"book-1","qty":2,"price":4.5}],"currency":"USD"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp services.OrderResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 9.00, resp.TotalAmount)
	assert.NotEmpty(t, resp.ID)

	assert.Len(t, repo.created, 1)
	assert.Equal(t, models.OrderStatusPending, repo.created[0].Status)
}

func TestCreateOrder_DefaultsMissingFields(t *testing.T) {
	repo := &stubOrderRepo{}
	r := newOrderRouter(repo)

	// Missing qty counts as 1, missing price as 0.
	w := postOrder(r, `{"user_id":"u1","items":[{"sku":"book-1","price":3.99},{"sku":"card-1","qty":4}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp services.OrderResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3.99, resp.TotalAmount)
	assert.Equal(t, services.DefaultCurrency, repo.created[0].Currency)
}

func TestCreateOrder_NonNumericPriceRejected(t *testing.T) {
	repo := &stubOrderRepo{}
	r := newOrderRouter(repo)

	w := postOrder(r, `{"user_id":"u1","items":[{"sku":"book-1","qty":1,"price":"ten"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}

func TestCreateOrder_EmptyItemsIsZeroTotal(t *testing.T) {
	repo := &stubOrderRepo{}
	r := newOrderRouter(repo)

	w := postOrder(r, `{"user_id":"u1","items":[]}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp services.OrderResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.TotalAmount)
}

func TestCreateOrder_AbsentItemsRejected(t *testing.T) {
	repo := &stubOrderRepo{}
	r := newOrderRouter(repo)

	// items omitted entirely, unlike an explicit empty list.
	w := postOrder(r, `{"user_id":"u1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}

func TestCreateOrder_MissingUserIDRejected(t *testing.T) {
	repo := &stubOrderRepo{}
	r := newOrderRouter(repo)

	w := postOrder(r, `{"items":[{"sku":"book-1","qty":1,"price":1}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}
