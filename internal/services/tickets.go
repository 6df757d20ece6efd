package services

import (
	"context"
	"time"

	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/storage"
)

type TicketsService interface {
	CreateTicket(ctx context.Context, identity models.Identity, request models.TicketRequest) (*models.Ticket, error)
	GetUserTickets(ctx context.Context, identity models.Identity) ([]models.Ticket, error)
}

type Tickets struct {
	Storage storage.IStorage
}

// NewTickets creates the support ticket service.
func NewTickets(storage storage.IStorage) TicketsService {
	return &Tickets{Storage: storage}
}

// CreateTicket persists a new support ticket for the caller.
func (s *Tickets) CreateTicket(ctx context.Context, identity models.Identity, request models.TicketRequest) (*models.Ticket, error) {
	ticket := models.Ticket{
		ID:          NewRecordID(storage.TicketKeyPrefix),
		UserID:      identity.UserID,
		ClientEmail: identity.Email,
		ClientName:  identity.Name,
		Subject:     request.Subject,
		Category:    request.Category,
		Message:     request.Message,
		Contact:     request.Contact,
		Status:      models.TicketStatusOpen,
		CreatedAt:   Timestamp(time.Now()),
	}

	if err := s.Storage.AddTicket(ctx, ticket); err != nil {
		logger.Error("Failed to add ticket", err)
		return nil, err
	}
	return &ticket, nil
}

// GetUserTickets returns the caller's tickets only.
func (s *Tickets) GetUserTickets(ctx context.Context, identity models.Identity) ([]models.Ticket, error) {
	all, err := s.Storage.GetTickets(ctx)
	if err != nil {
		return nil, err
	}
	tickets := make([]models.Ticket, 0, len(all))
	for _, ticket := range all {
		if ticket.UserID == identity.UserID {
			tickets = append(tickets, ticket)
		}
	}
	return tickets, nil
}
