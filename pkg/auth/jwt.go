// Package auth provides JWT validation and request user context.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	apperrors "pos-backend/pkg/errors"
)

// Claims are the token claims the API cares about.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Validator verifies HS256 tokens issued for the back office.
type Validator struct {
	secret []byte
	issuer string
}

// NewValidator creates a token validator.
func NewValidator(secret, issuer string) (*Validator, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &Validator{secret: []byte(secret), issuer: issuer}, nil
}

// Validate parses and verifies a token string, returning its claims.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid token").WithCause(err)
	}
	if !token.Valid {
		return nil, apperrors.NewUnauthorizedError("invalid token")
	}
	if claims.Subject == "" {
		return nil, apperrors.NewUnauthorizedError("token has no subject")
	}
	return claims, nil
}

type contextKey struct{}

// WithUser stores the authenticated claims on the context.
func WithUser(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// UserFromContext returns the authenticated claims, or an unauthorized
// error when the request never passed the auth middleware.
func UserFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	if !ok || claims == nil {
		return nil, apperrors.NewUnauthorizedError("no authenticated user")
	}
	return claims, nil
}
