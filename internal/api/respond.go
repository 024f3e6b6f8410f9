package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain's sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrPhotoNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCarNotAvailable),
		errors.Is(err, domain.ErrRentalNotActive),
		errors.Is(err, domain.ErrRentalNotReturned),
		errors.Is(err, domain.ErrCarHasActiveRental),
		errors.Is(err, domain.ErrCustomerHasActiveRental),
		errors.Is(err, domain.ErrDuplicateRegistration),
		errors.Is(err, domain.ErrDuplicateLicense),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateUsername):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
