// Copyright (c) 2026 Randfin. All rights reserved.

package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/constants"
	"github.com/randfin/randfin/internal/platform/sec"
	"github.com/randfin/randfin/internal/platform/validate"
	"github.com/randfin/randfin/pkg/uuidv7"
)

type Service struct {
	accounts AccountRepository
	sessions SessionRepository
	tokens   *sec.TokenService
	logger   *slog.Logger
}

func NewService(accounts AccountRepository, sessions SessionRepository, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies credentials and issues an access/refresh token pair.
//
// Every failure path returns the same Unauthorized message so responses
// don't reveal whether the username exists.
func (service *Service) Login(context context.Context, username, password string) (*TokenPair, error) {
	username = strings.TrimSpace(username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username)
	validator.Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.accounts.GetByUsername(context, username)
	if err != nil {
		service.logger.Warn("login_failed", slog.String("username", username), slog.String("reason", "unknown_account"))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	if !account.IsActive {
		service.logger.Warn("login_failed", slog.String("username", username), slog.String("reason", "inactive"))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		service.logger.Warn("login_failed", slog.String("username", username), slog.String("reason", "bad_password"))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	pair, err := service.issueTokens(context, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("login_succeeded",
		slog.String("user_id", account.ID),
		slog.String("role", account.Role),
	)

	pair.User = account
	return pair, nil
}

// Refresh rotates a refresh token: the old session is revoked before the
// new pair is issued, so a leaked token works at most once.
func (service *Service) Refresh(context context.Context, refreshToken string) (*TokenPair, error) {
	validator := &validate.Validator{}
	validator.Required(FieldRefreshToken, refreshToken)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	userID, err := service.sessions.Get(context, refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	if err := service.sessions.Delete(context, refreshToken); err != nil {
		return nil, err
	}

	account, err := service.accounts.GetByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}
	if !account.IsActive {
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	return service.issueTokens(context, account)
}

// Logout revokes the session behind a refresh token. Revoking an unknown
// token succeeds; logout is idempotent.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := service.sessions.Delete(context, refreshToken); err != nil {
		return err
	}

	service.logger.Info("logout")
	return nil
}

// Me returns the account behind verified claims.
func (service *Service) Me(context context.Context, userID string) (*Account, error) {
	return service.accounts.GetByID(context, userID)
}

func (service *Service) issueTokens(context context.Context, account *Account) (*TokenPair, error) {
	accessToken, err := service.tokens.GenerateAccessToken(
		account.ID, account.Username, account.Role, constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken := uuidv7.New()
	if err := service.sessions.Set(context, refreshToken, account.ID, constants.RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(constants.AccessTokenTTL.Seconds()),
	}, nil
}
