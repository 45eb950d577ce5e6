package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pos-backend/application/services"
	"pos-backend/domain/core/entities"
	"pos-backend/pkg/utils"
)

// StaffHandler handles staff account requests.
type StaffHandler struct {
	staff  *services.StaffService
	logger *zap.Logger
}

// NewStaffHandler creates a staff handler.
func NewStaffHandler(staff *services.StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{staff: staff, logger: logger}
}

// CreateStaffRequest is the body for POST /staff.
type CreateStaffRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin manager cashier"`
}

// UpdateStaffRequest is the body for PUT /staff/{id}.
type UpdateStaffRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager cashier"`
	Active *bool   `json:"active,omitempty"`
}

// Create handles POST /staff.
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	member, err := h.staff.Create(r.Context(), req.Name, req.Email, entities.StaffRole(req.Role))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

// List handles GET /staff.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.staff.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// Get handles GET /staff/{id}.
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.staff.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// Update handles PUT /staff/{id}.
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	input := services.UpdateStaffInput{
		Name:   req.Name,
		Email:  req.Email,
		Active: req.Active,
	}
	if req.Role != nil {
		role := entities.StaffRole(*req.Role)
		input.Role = &role
	}

	member, err := h.staff.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// Delete handles DELETE /staff/{id}.
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.staff.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
