package models

// Project statuses
const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusDeclined   = "declined"
)

// ProjectRequest - project request payload, comes from outside
type ProjectRequest struct {
	ProjectName string `json:"projectName" validate:"required"`
	Description string `json:"description" validate:"required"`
	UILevel     string `json:"uiLevel" validate:"required"`
	Price       int    `json:"price" validate:"required"`
}

// ProjectUpdateRequest - admin status/progress update. Absent fields are
// left untouched; present values are merged without range checks.
type ProjectUpdateRequest struct {
	Status   *string `json:"status"`
	Progress *int    `json:"progress"`
}

// Project - persisted project record
type Project struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	ClientEmail   string `json:"clientEmail"`
	ClientName    string `json:"clientName"`
	ProjectName   string `json:"projectName"`
	Description   string `json:"description"`
	UILevel       string `json:"uiLevel"`
	Price         int    `json:"price"`
	PaymentStatus string `json:"paymentStatus"`
	Progress      int    `json:"progress"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ProjectResponse - response for a successful project creation or update
type ProjectResponse struct {
	Success bool    `json:"success"`
	Project Project `json:"project"`
}

// ProjectsResponse - response for project listings
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}
