// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in. The issuer is
// supplied by the delivery layer, typically the serving endpoint's own URL,
// and is embedded in the minted tokens.
type LoginInput struct {
	Username string
	Password string
	Issuer   string
}

// RefreshInput defines the data required to refresh an access token.
type RefreshInput struct {
	RefreshToken string
	Issuer       string
}

// --- Output DTOs ---

// TokenPairOutput returns an access/refresh token pair. The JSON field names
// are part of the wire contract.
type TokenPairOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Login validates the credentials against the store and mints a token
	// pair. Any credential failure surfaces as a single uniform error that
	// does not reveal whether the username or the password was wrong.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// Refresh verifies the refresh token, re-derives the subject's current
	// roles from the store, and mints a fresh access token. The refresh
	// token itself is echoed back unrotated.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)
}
