package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pos-backend/domain/core/valueobjects"
	apperrors "pos-backend/pkg/errors"
)

// Customer is a loyalty program member.
type Customer struct {
	ID            string                       `json:"id"`
	Name          string                       `json:"name"`
	Email         string                       `json:"email,omitempty"`
	Phone         string                       `json:"phone,omitempty"`
	LoyaltyPoints int                          `json:"loyaltyPoints"`
	Membership    valueobjects.MembershipLevel `json:"membershipLevel"`
	CreatedAt     time.Time                    `json:"createdAt"`
	UpdatedAt     time.Time                    `json:"updatedAt"`
}

// NewCustomer creates a customer starting at bronze with zero points.
func NewCustomer(name, email, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("customer name is required")
	}

	now := time.Now()
	return &Customer{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      strings.TrimSpace(email),
		Phone:      strings.TrimSpace(phone),
		Membership: valueobjects.MembershipBronze,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
