package handlers

import (
	"net/http"

	"github.com/rudracore/client-portal/internal/helpers"
	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/services"
)

// CreateTicketHandler — files a new support ticket for the caller
func CreateTicketHandler(t services.TicketsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var request models.TicketRequest
		if err := DecodeValid(r, &request); err != nil {
			logger.Warn("Invalid ticket request:", err)
			Error(w, http.StatusBadRequest, "All fields including contact information are required")
			return
		}

		ticket, err := t.CreateTicket(r.Context(), identity, request)
		if err != nil {
			logger.Error("Error creating ticket:", err)
			Error(w, http.StatusInternalServerError, "Failed to create ticket")
			return
		}

		JSON(w, http.StatusOK, models.TicketResponse{Success: true, Ticket: *ticket})
	})
}

// GetUserTicketsHandler — lists the caller's tickets
func GetUserTicketsHandler(t services.TicketsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tickets, err := t.GetUserTickets(r.Context(), identity)
		if err != nil {
			logger.Error("Error fetching user tickets:", err)
			Error(w, http.StatusInternalServerError, "Failed to fetch tickets")
			return
		}

		JSON(w, http.StatusOK, models.TicketsResponse{Tickets: tickets})
	})
}
