// Copyright (c) 2026 Randfin. All rights reserved.

// Package auth implements admin authentication: credential login, short-lived
// RS256 access tokens, and Redis-backed refresh token sessions.
package auth

import "time"

// Account is one staff account able to sign in to the dashboard.
type Account struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// PasswordHash never leaves the service layer.
	PasswordHash string `json:"-"`
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         *Account `json:"user,omitempty"`
}

// Global field names for validation
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldRefreshToken = "refresh_token"
)
