package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"omitempty,email"`
	Role  string `validate:"required,oneof=admin cashier"`
}

func TestValidateStructPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Name: "Ada", Role: "admin"}))
}

func TestValidateStructReportsAllFailures(t *testing.T) {
	err := ValidateStruct(sample{Email: "not-an-email", Role: "intern"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "role must be one of: admin cashier")
}
