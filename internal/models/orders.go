package models

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// PaymentStatusPaid is the only payment status ever recorded. Payment is
// asserted by the user, never verified against a gateway.
const PaymentStatusPaid = "paid"

// OrderRequest - order creation payload, comes from outside
type OrderRequest struct {
	ServiceID       string `json:"serviceId" validate:"required"`
	ServiceName     string `json:"serviceName" validate:"required"`
	Price           int    `json:"price" validate:"required"`
	CustomNotes     string `json:"customNotes"`
	LifetimeUpdates bool   `json:"lifetimeUpdates"`
}

// Order - persisted order record
type Order struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	ClientEmail     string `json:"clientEmail"`
	ClientName      string `json:"clientName"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	Price           int    `json:"price"`
	CustomNotes     string `json:"customNotes"`
	LifetimeUpdates bool   `json:"lifetimeUpdates"`
	PaymentStatus   string `json:"paymentStatus"`
	Progress        int    `json:"progress"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// OrderResponse - response for a successful order creation
type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

// OrdersResponse - response for order listings
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}
