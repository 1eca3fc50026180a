package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoplite/api/internal/middleware"
	"github.com/shoplite/api/internal/models"
	"github.com/shoplite/api/internal/repository"
	"github.com/shoplite/api/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// CreateProduct handles POST /products. Admin role required.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || identity.Role != models.RoleAdmin {
		WriteError(w, http.StatusForbidden, "Only admins can add products", h.log)
		return
	}

	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Warn("failed to decode product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		switch err {
		case service.ErrMissingProductFields:
			WriteError(w, http.StatusBadRequest, "Name and price are required", h.log)
		case service.ErrNegativePrice:
			WriteError(w, http.StatusBadRequest, "Price must be non-negative", h.log)
		default:
			h.log.Error("failed to create product", "error", err)
			WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		}
		return
	}

	h.log.Info("product created", "product_id", product.ID, "created_by", identity.UserID)
	WriteJSON(w, http.StatusCreated, map[string]*models.Product{"product": product}, h.log)
}

// ListProducts handles GET /products.
// Soft-deleted products are included; callers filter on the deleted flag.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string][]models.Product{"products": products}, h.log)
}

// GetProduct handles GET /products/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if err == repository.ErrProductNotFound {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to get product", "product_id", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]*models.Product{"product": product}, h.log)
}

// UpdateProduct handles PUT /products/{productId}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Warn("failed to decode product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, input)
	if err != nil {
		switch err {
		case repository.ErrProductNotFound:
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
		case service.ErrNegativePrice:
			WriteError(w, http.StatusBadRequest, "Price must be non-negative", h.log)
		default:
			h.log.Error("failed to update product", "product_id", productID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]*models.Product{"product": product}, h.log)
}

// DeleteProduct handles DELETE /products/{productId}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		if err == repository.ErrProductNotFound {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to delete product", "product_id", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
