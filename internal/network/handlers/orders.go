package handlers

import (
	"net/http"

	"github.com/rudracore/client-portal/internal/helpers"
	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/services"
)

// IdempotencyHeader carries an optional client token that collapses
// duplicate order submissions. Without it every submit creates a record.
const IdempotencyHeader = "Idempotency-Key"

// CreateOrderHandler — places a new order for the caller
func CreateOrderHandler(o services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var request models.OrderRequest
		if err := DecodeValid(r, &request); err != nil {
			logger.Warn("Invalid order request:", err)
			Error(w, http.StatusBadRequest, "Service details are required")
			return
		}

		order, err := o.CreateOrder(r.Context(), identity, request, r.Header.Get(IdempotencyHeader))
		if err != nil {
			logger.Error("Error creating order:", err)
			Error(w, http.StatusInternalServerError, "Failed to create order")
			return
		}

		JSON(w, http.StatusOK, models.OrderResponse{Success: true, Order: *order})
	})
}

// GetUserOrdersHandler — lists the caller's orders
func GetUserOrdersHandler(o services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		orders, err := o.GetUserOrders(r.Context(), identity)
		if err != nil {
			logger.Error("Error fetching user orders:", err)
			Error(w, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}

		JSON(w, http.StatusOK, models.OrdersResponse{Orders: orders})
	})
}
