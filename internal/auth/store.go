// Copyright (c) 2026 Randfin. All rights reserved.

package auth

import (
	"context"
	"time"
)

type AccountRepository interface {
	GetByUsername(context context.Context, username string) (*Account, error)
	GetByID(context context.Context, id string) (*Account, error)
}

// SessionRepository tracks issued refresh tokens. A token absent from the
// store is invalid, which is what makes logout immediate.
type SessionRepository interface {
	Set(context context.Context, token, userID string, ttl time.Duration) error
	Get(context context.Context, token string) (string, error)
	Delete(context context.Context, token string) error
}
