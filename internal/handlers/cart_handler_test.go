package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shoplite/api/internal/models"
	"github.com/shoplite/api/internal/repository"
	"github.com/shoplite/api/internal/service"
	"github.com/shoplite/api/pkg/logger"
)

type cartFixture struct {
	router   chi.Router
	cart     *repository.InMemoryCartRepository
	products *repository.InMemoryProductRepository
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	cartRepo := repository.NewInMemoryCartRepository()
	productRepo := repository.NewInMemoryProductRepository()
	svc := service.NewCartService(cartRepo, productRepo)
	handler := NewCartHandler(svc, logger.New("error"))

	r := chi.NewRouter()
	r.Post("/cart/items", handler.AddItem)
	r.Get("/cart", handler.GetCart)
	r.Put("/cart/items/{itemId}", handler.UpdateItem)
	r.Delete("/cart/items/{itemId}", handler.RemoveItem)

	return &cartFixture{router: r, cart: cartRepo, products: productRepo}
}

func (f *cartFixture) seededProductID(t *testing.T) string {
	t.Helper()
	products, err := f.products.GetAll(context.Background())
	if err != nil {
		t.Fatalf("failed to read products: %v", err)
	}
	return products[0].ID
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) []models.CartItem {
	t.Helper()
	var response struct {
		Cart []models.CartItem `json:"cart"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode cart response: %v", err)
	}
	return response.Cart
}

func TestAddCartItem(t *testing.T) {
	f := newCartFixture(t)
	productID := f.seededProductID(t)

	body := fmt.Sprintf(`{"productId":%q,"quantity":2}`, productID)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	cart := decodeCart(t, w)
	if len(cart) != 1 {
		t.Fatalf("cart length = %d, want 1", len(cart))
	}
	if cart[0].ProductID != productID {
		t.Errorf("productId = %s, want %s", cart[0].ProductID, productID)
	}
	if cart[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", cart[0].Quantity)
	}
	if cart[0].ID == "" {
		t.Error("expected a generated item id")
	}
}

func TestAddCartItem_Invalid(t *testing.T) {
	f := newCartFixture(t)
	productID := f.seededProductID(t)

	tests := []struct {
		name          string
		body          string
		expectedError string
	}{
		{
			name:          "unknown product",
			body:          `{"productId":"no-such-product","quantity":1}`,
			expectedError: "Invalid product",
		},
		{
			name:          "zero quantity",
			body:          fmt.Sprintf(`{"productId":%q,"quantity":0}`, productID),
			expectedError: "Quantity must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if response["error"] != tt.expectedError {
				t.Errorf("error = %q, want %q", response["error"], tt.expectedError)
			}
		})
	}
}

func TestGetCart(t *testing.T) {
	f := newCartFixture(t)
	productID := f.seededProductID(t)

	// Empty cart first
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if cart := decodeCart(t, w); len(cart) != 0 {
		t.Errorf("cart length = %d, want 0", len(cart))
	}

	// Add two items, expect both back in insertion order
	for i := 1; i <= 2; i++ {
		body := fmt.Sprintf(`{"productId":%q,"quantity":%d}`, productID, i)
		addReq := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
		f.router.ServeHTTP(httptest.NewRecorder(), addReq)
	}

	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	cart := decodeCart(t, w)
	if len(cart) != 2 {
		t.Fatalf("cart length = %d, want 2", len(cart))
	}
	if cart[0].Quantity != 1 || cart[1].Quantity != 2 {
		t.Errorf("quantities = %d,%d, want 1,2", cart[0].Quantity, cart[1].Quantity)
	}
}

func TestUpdateCartItem(t *testing.T) {
	f := newCartFixture(t)
	productID := f.seededProductID(t)

	body := fmt.Sprintf(`{"productId":%q,"quantity":1}`, productID)
	addW := httptest.NewRecorder()
	f.router.ServeHTTP(addW, httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body)))
	itemID := decodeCart(t, addW)[0].ID

	req := httptest.NewRequest(http.MethodPut, "/cart/items/"+itemID, strings.NewReader(`{"quantity":5}`))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	cart := decodeCart(t, w)
	if len(cart) != 1 || cart[0].Quantity != 5 {
		t.Errorf("cart = %+v, want single item with quantity 5", cart)
	}
}

func TestUpdateCartItem_NotFound(t *testing.T) {
	f := newCartFixture(t)

	req := httptest.NewRequest(http.MethodPut, "/cart/items/no-such-item", strings.NewReader(`{"quantity":5}`))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRemoveCartItem(t *testing.T) {
	f := newCartFixture(t)
	productID := f.seededProductID(t)

	body := fmt.Sprintf(`{"productId":%q,"quantity":1}`, productID)
	addW := httptest.NewRecorder()
	f.router.ServeHTTP(addW, httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body)))
	itemID := decodeCart(t, addW)[0].ID

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/"+itemID, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	// Removal is real, not a soft flag
	listW := httptest.NewRecorder()
	f.router.ServeHTTP(listW, httptest.NewRequest(http.MethodGet, "/cart", nil))
	if cart := decodeCart(t, listW); len(cart) != 0 {
		t.Errorf("cart length = %d, want 0 after removal", len(cart))
	}
}

func TestRemoveCartItem_NotFound(t *testing.T) {
	f := newCartFixture(t)

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/no-such-item", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
