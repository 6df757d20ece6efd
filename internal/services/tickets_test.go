package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/storage"
	"github.com/rudracore/client-portal/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func TestCreateTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	initTestLogger(t)

	tickets := NewTickets(mockStorage)

	var captured models.Ticket
	mockStorage.EXPECT().AddTicket(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, ticket models.Ticket) error {
			captured = ticket
			return nil
		})

	request := models.TicketRequest{
		Subject:  "Site is down",
		Category: models.TicketCategoryTechnical,
		Message:  "The dashboard does not load",
		Contact:  "client@example.com",
	}
	ticket, err := tickets.CreateTicket(context.Background(), testIdentity, request)
	if err != nil {
		t.Fatalf("Expected ticket, got error: %v", err)
	}

	if captured.UserID != testIdentity.UserID || captured.ClientEmail != testIdentity.Email {
		t.Errorf("Owner fields not stamped from identity: %+v", captured)
	}
	if captured.Status != models.TicketStatusOpen {
		t.Errorf("Expected open ticket, got: %q", captured.Status)
	}
	if !strings.HasPrefix(captured.ID, storage.TicketKeyPrefix) {
		t.Errorf("Unexpected identifier: %q", captured.ID)
	}
	if ticket.Subject != request.Subject || ticket.Category != request.Category || ticket.Contact != request.Contact {
		t.Errorf("Unexpected ticket content: %+v", ticket)
	}
}

func TestGetUserTickets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	initTestLogger(t)

	tickets := NewTickets(mockStorage)

	mockStorage.EXPECT().GetTickets(gomock.Any()).Return([]models.Ticket{
		{ID: "ticket_1_a", UserID: "user-1"},
		{ID: "ticket_2_b", UserID: "user-2"},
	}, nil)

	got, err := tickets.GetUserTickets(context.Background(), testIdentity)
	if err != nil {
		t.Fatalf("Expected tickets, got error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != testIdentity.UserID {
		t.Errorf("Expected only the caller's tickets, got: %+v", got)
	}
}
