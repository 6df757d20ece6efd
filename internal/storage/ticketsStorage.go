package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rudracore/client-portal/internal/models"
)

type TicketDatabase struct {
	KV KVStore
}

// NewTicketsStorage creates the support ticket record store.
func NewTicketsStorage(kv KVStore) TicketsStorage {
	return &TicketDatabase{KV: kv}
}

func (s *TicketDatabase) AddTicket(ctx context.Context, ticket models.Ticket) error {
	value, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}
	if err := s.KV.Set(ctx, ticket.ID, value); err != nil {
		return fmt.Errorf("failed to add ticket: %w", err)
	}
	return nil
}

// GetTickets returns every ticket record, in store iteration order.
func (s *TicketDatabase) GetTickets(ctx context.Context) ([]models.Ticket, error) {
	values, err := s.KV.GetByPrefix(ctx, TicketKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan tickets: %w", err)
	}
	tickets := make([]models.Ticket, 0, len(values))
	for _, value := range values {
		var ticket models.Ticket
		if err := json.Unmarshal(value, &ticket); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}
