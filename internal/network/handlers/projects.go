package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rudracore/client-portal/internal/helpers"
	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/services"
)

// CreateProjectHandler — submits a new project request for the caller
func CreateProjectHandler(p services.ProjectsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var request models.ProjectRequest
		if err := DecodeValid(r, &request); err != nil {
			logger.Warn("Invalid project request:", err)
			Error(w, http.StatusBadRequest, "All fields are required")
			return
		}

		project, err := p.CreateProject(r.Context(), identity, request)
		if err != nil {
			logger.Error("Error in project submission:", err)
			Error(w, http.StatusInternalServerError, "Failed to submit project")
			return
		}

		JSON(w, http.StatusOK, models.ProjectResponse{Success: true, Project: *project})
	})
}

// GetUserProjectsHandler — lists the caller's projects
func GetUserProjectsHandler(p services.ProjectsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		projects, err := p.GetUserProjects(r.Context(), identity)
		if err != nil {
			logger.Error("Error fetching user projects:", err)
			Error(w, http.StatusInternalServerError, "Failed to fetch projects")
			return
		}

		JSON(w, http.StatusOK, models.ProjectsResponse{Projects: projects})
	})
}

// GetAllProjectsHandler — lists every project, admin only
func GetAllProjectsHandler(i services.IdentityService, p services.ProjectsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !i.IsAdmin(identity) {
			logger.Warn("Admin access denied", identity.Email)
			Error(w, http.StatusForbidden, "Admin access required")
			return
		}

		projects, err := p.GetAllProjects(r.Context())
		if err != nil {
			logger.Error("Error fetching all projects:", err)
			Error(w, http.StatusInternalServerError, "Failed to fetch projects")
			return
		}

		JSON(w, http.StatusOK, models.ProjectsResponse{Projects: projects})
	})
}

// UpdateProjectHandler — merges status/progress into a project, admin only
func UpdateProjectHandler(i services.IdentityService, p services.ProjectsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			logger.Warn("Failed to get identity:", err)
			Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !i.IsAdmin(identity) {
			logger.Warn("Admin access denied", identity.Email)
			Error(w, http.StatusForbidden, "Admin access required")
			return
		}

		var request models.ProjectUpdateRequest
		if err := DecodeValid(r, &request); err != nil {
			logger.Warn("Invalid update request:", err)
			Error(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		project, err := p.UpdateProject(r.Context(), chi.URLParam(r, "id"), request)
		if err != nil {
			if errors.Is(err, services.ErrProjectNotFound) {
				Error(w, http.StatusNotFound, "Project not found")
				return
			}
			logger.Error("Error updating project:", err)
			Error(w, http.StatusInternalServerError, "Failed to update project")
			return
		}

		JSON(w, http.StatusOK, models.ProjectResponse{Success: true, Project: *project})
	})
}
