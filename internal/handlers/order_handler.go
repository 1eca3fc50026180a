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

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrEmptyOrder:
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case service.ErrInvalidQuantity:
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		case service.ErrInvalidProduct:
			WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		}
		return
	}

	h.log.Info("order created", "order_id", order.ID, "items_count", len(order.Items), "total", order.Total)
	WriteJSON(w, http.StatusCreated, map[string]*models.Order{"order": order}, h.log)
}

// PayOrder handles POST /orders/{orderId}/pay
func (h *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orderService.PayOrder(r.Context(), orderID)
	if err != nil {
		if err == repository.ErrOrderNotFound {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to pay order", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	h.log.Info("order paid", "order_id", order.ID)
	WriteJSON(w, http.StatusOK, map[string]*models.Order{"order": order}, h.log)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string][]models.Order{"orders": orders}, h.log)
}

// GetOrder handles GET /orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if err == repository.ErrOrderNotFound {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]*models.Order{"order": order}, h.log)
}

// DeleteOrder handles DELETE /orders/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	if err := h.orderService.DeleteOrder(r.Context(), orderID); err != nil {
		if err == repository.ErrOrderNotFound {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to delete order", "order_id", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Something went wrong!", h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
