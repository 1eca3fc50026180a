package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoplite/api/internal/models"
	"github.com/shoplite/api/internal/repository"
	"github.com/shoplite/api/internal/service"
)

// CartHandler handles cart-related HTTP requests.
// All routes operate on the single process-wide cart.
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input models.CartItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Warn("failed to decode cart request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	items, err := h.cartService.AddItem(r.Context(), input)
	if err != nil {
		switch err {
		case service.ErrInvalidProduct:
			WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
		case service.ErrInvalidQuantity:
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		default:
			h.log.Error("failed to add cart item", "error", err)
			WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, map[string][]models.CartItem{"cart": items}, h.log)
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.cartService.Items(r.Context())
	if err != nil {
		h.log.Error("failed to read cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string][]models.CartItem{"cart": items}, h.log)
}

// UpdateItem handles PUT /cart/items/{itemId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	var input models.CartItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Warn("failed to decode cart request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	items, err := h.cartService.UpdateItem(r.Context(), itemID, input)
	if err != nil {
		switch err {
		case repository.ErrCartItemNotFound:
			WriteError(w, http.StatusNotFound, "Cart item not found", h.log)
		case service.ErrInvalidQuantity:
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		default:
			h.log.Error("failed to update cart item", "item_id", itemID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string][]models.CartItem{"cart": items}, h.log)
}

// RemoveItem handles DELETE /cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	if err := h.cartService.RemoveItem(r.Context(), itemID); err != nil {
		if err == repository.ErrCartItemNotFound {
			WriteError(w, http.StatusNotFound, "Cart item not found", h.log)
			return
		}
		h.log.Error("failed to remove cart item", "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
