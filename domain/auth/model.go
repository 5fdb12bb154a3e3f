package auth

import "time"

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SetupRequest represents the first-run setup payload
type SetupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse is the account as exposed to callers, sans password hash.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse carries a fresh token together with the account.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse is the authenticated-account probe. LastActiveAt is only set
// when the presence heartbeat is enabled.
type MeResponse struct {
	UserResponse
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastSignedIn *time.Time `json:"lastSignedIn,omitempty"`
	LastActiveAt *time.Time `json:"lastActiveAt,omitempty"`
}

// NeedsSetupResponse reports whether first-run setup is still pending.
type NeedsSetupResponse struct {
	NeedsSetup bool `json:"needsSetup"`
}

// invalidCredentialsMsg is deliberately identical for unknown email, wrong
// password and inactive accounts, so callers cannot probe which part failed.
const invalidCredentialsMsg = "Invalid email or password."
