package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "pos-backend/pkg/errors"
)

// StaffRole is a staff member's access role.
type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleManager StaffRole = "manager"
	RoleCashier StaffRole = "cashier"
)

// ParseStaffRole validates and converts a raw role string.
func ParseStaffRole(s string) (StaffRole, error) {
	switch StaffRole(s) {
	case RoleAdmin, RoleManager, RoleCashier:
		return StaffRole(s), nil
	}
	return "", apperrors.NewValidationError("invalid staff role: " + s)
}

// Staff is a back-office or register user.
type Staff struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      StaffRole `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewStaff creates an active staff member.
func NewStaff(name, email string, role StaffRole) (*Staff, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("staff name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("staff email is required")
	}
	if _, err := ParseStaffRole(string(role)); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Staff{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     strings.TrimSpace(email),
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
