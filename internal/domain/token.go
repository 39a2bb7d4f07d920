package domain

import "time"

// AuthToken is a bearer token for API authentication.
// The raw token is only returned once at issuance.
type AuthToken struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"-" db:"user_id"`
	TokenHash   string     `json:"-" db:"token_hash"`              // Never expose hash
	TokenPrefix string     `json:"token_prefix" db:"token_prefix"` // First chars for identification
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty" db:"last_used_at"`
}

// IssueTokenRequest is the request body for obtaining an auth token.
type IssueTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IssueTokenResponse is returned when issuing a token.
// The token itself is only shown once.
type IssueTokenResponse struct {
	ID          string    `json:"id"`
	Token       string    `json:"token"`
	TokenPrefix string    `json:"token_prefix"`
	CreatedAt   time.Time `json:"created_at"`
}
