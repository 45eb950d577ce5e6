package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() Claims {
	return Claims{
		Role: "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff-1",
			Issuer:    "pos-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestValidateAcceptsGoodToken(t *testing.T) {
	v, err := NewValidator(testSecret, "pos-backend")
	require.NoError(t, err)

	claims, err := v.Validate(signToken(t, testSecret, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.Subject)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	v, err := NewValidator(testSecret, "pos-backend")
	require.NoError(t, err)

	_, err = v.Validate(signToken(t, "other-secret", validClaims()))
	assert.Error(t, err)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	v, err := NewValidator(testSecret, "pos-backend")
	require.NoError(t, err)

	claims := validClaims()
	claims.Issuer = "someone-else"
	_, err = v.Validate(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	v, err := NewValidator(testSecret, "pos-backend")
	require.NoError(t, err)

	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	_, err = v.Validate(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestValidateRejectsMissingSubject(t *testing.T) {
	v, err := NewValidator(testSecret, "pos-backend")
	require.NoError(t, err)

	claims := validClaims()
	claims.Subject = ""
	_, err = v.Validate(signToken(t, testSecret, claims))
	assert.Error(t, err)
}

func TestNewValidatorRequiresSecret(t *testing.T) {
	_, err := NewValidator("", "pos-backend")
	assert.Error(t, err)
}

func TestUserContextRoundTrip(t *testing.T) {
	claims := validClaims()
	ctx := WithUser(context.Background(), &claims)

	got, err := UserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", got.Subject)

	_, err = UserFromContext(context.Background())
	assert.Error(t, err)
}
