package handlers

import (
	"errors"
	"net/http"

	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/services"
)

// HealthHandler — liveness check
func HealthHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// RegisterUserHandler — registers a new user with the identity provider
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.RegisterRequest
		if err := DecodeValid(r, &request); err != nil {
			logger.Warn("Invalid register request:", err)
			Error(w, http.StatusBadRequest, "Email, password, and name are required")
			return
		}

		user, err := i.RegisterUser(r.Context(), request)
		if err != nil {
			if errors.Is(err, services.ErrUserExists) {
				logger.Warn("Error register user", request.Email)
				Error(w, http.StatusBadRequest, "User already registered")
				return
			}
			logger.Error("Error register user", err)
			Error(w, http.StatusInternalServerError, "Registration failed")
			return
		}

		logger.Info("User registered", request.Email)
		JSON(w, http.StatusOK, models.RegisterResponse{Success: true, User: *user})
	})
}
