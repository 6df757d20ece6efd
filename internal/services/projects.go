package services

import (
	"context"
	"errors"
	"time"

	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/storage"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

type ProjectsService interface {
	CreateProject(ctx context.Context, identity models.Identity, request models.ProjectRequest) (*models.Project, error)
	GetUserProjects(ctx context.Context, identity models.Identity) ([]models.Project, error)
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, request models.ProjectUpdateRequest) (*models.Project, error)
}

type Projects struct {
	Storage storage.IStorage
}

// NewProjects creates the project service.
func NewProjects(storage storage.IStorage) ProjectsService {
	return &Projects{Storage: storage}
}

// CreateProject persists a new project request. Owner fields come from the
// verified identity, never from the request body.
func (s *Projects) CreateProject(ctx context.Context, identity models.Identity, request models.ProjectRequest) (*models.Project, error) {
	project := models.Project{
		ID:            NewRecordID(storage.ProjectKeyPrefix),
		UserID:        identity.UserID,
		ClientEmail:   identity.Email,
		ClientName:    identity.Name,
		ProjectName:   request.ProjectName,
		Description:   request.Description,
		UILevel:       request.UILevel,
		Price:         request.Price,
		PaymentStatus: models.PaymentStatusPaid, // asserted, not verified
		Progress:      0,
		Status:        models.ProjectStatusPending,
		CreatedAt:     Timestamp(time.Now()),
	}

	if err := s.Storage.AddProject(ctx, project); err != nil {
		logger.Error("Failed to add project", err)
		return nil, err
	}
	return &project, nil
}

// GetUserProjects returns the caller's projects only.
func (s *Projects) GetUserProjects(ctx context.Context, identity models.Identity) ([]models.Project, error) {
	all, err := s.Storage.GetProjects(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]models.Project, 0, len(all))
	for _, project := range all {
		if project.UserID == identity.UserID {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

// GetAllProjects returns every project. Admin gating happens in the handler.
func (s *Projects) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.Storage.GetProjects(ctx)
}

// UpdateProject shallow-merges status and progress into an existing record.
// Values are not checked against the status vocabulary or the 0-100 range,
// matching the admin tooling this endpoint serves.
func (s *Projects) UpdateProject(ctx context.Context, id string, request models.ProjectUpdateRequest) (*models.Project, error) {
	project, err := s.Storage.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if request.Status != nil && *request.Status != "" {
		project.Status = *request.Status
	}
	if request.Progress != nil {
		project.Progress = *request.Progress
	}

	if err := s.Storage.SaveProject(ctx, *project); err != nil {
		logger.Error("Failed to save project", id, err)
		return nil, err
	}
	return project, nil
}
