// Package handlers implements the REST API endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "pos-backend/pkg/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		respondJSON(w, appErr.HTTPStatus, map[string]interface{}{
			"error": errorBody{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error": errorBody{
			Type:    string(apperrors.ErrorTypeInternal),
			Message: "internal error",
		},
	})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondError(w, apperrors.NewValidationError(message))
}
