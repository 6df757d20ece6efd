package models

// Ticket statuses
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in-progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// Ticket categories
const (
	TicketCategoryTechnical = "technical"
	TicketCategoryOrder     = "order"
	TicketCategoryPayment   = "payment"
	TicketCategoryGeneral   = "general"
)

// TicketRequest - support ticket payload, comes from outside
type TicketRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Category string `json:"category" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
}

// Ticket - persisted support ticket record
type Ticket struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ClientEmail string `json:"clientEmail"`
	ClientName  string `json:"clientName"`
	Subject     string `json:"subject"`
	Category    string `json:"category"`
	Message     string `json:"message"`
	Contact     string `json:"contact"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// TicketResponse - response for a successful ticket creation
type TicketResponse struct {
	Success bool   `json:"success"`
	Ticket  Ticket `json:"ticket"`
}

// TicketsResponse - response for ticket listings
type TicketsResponse struct {
	Tickets []Ticket `json:"tickets"`
}
