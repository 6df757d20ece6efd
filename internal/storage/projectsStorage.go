package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rudracore/client-portal/internal/models"
)

type ProjectDatabase struct {
	KV KVStore
}

// NewProjectsStorage creates the project record store.
func NewProjectsStorage(kv KVStore) ProjectsStorage {
	return &ProjectDatabase{KV: kv}
}

func (s *ProjectDatabase) AddProject(ctx context.Context, project models.Project) error {
	value, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := s.KV.Set(ctx, project.ID, value); err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}
	return nil
}

func (s *ProjectDatabase) GetProject(ctx context.Context, id string) (*models.Project, error) {
	value, err := s.KV.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var project models.Project
	if err := json.Unmarshal(value, &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project: %w", err)
	}
	return &project, nil
}

// GetProjects returns every project record, in store iteration order.
func (s *ProjectDatabase) GetProjects(ctx context.Context) ([]models.Project, error) {
	values, err := s.KV.GetByPrefix(ctx, ProjectKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	projects := make([]models.Project, 0, len(values))
	for _, value := range values {
		var project models.Project
		if err := json.Unmarshal(value, &project); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// SaveProject overwrites an existing record, last write wins.
func (s *ProjectDatabase) SaveProject(ctx context.Context, project models.Project) error {
	return s.AddProject(ctx, project)
}
