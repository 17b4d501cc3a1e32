package auth

import (
	"fmt"

	"public-auction/internal/auctionerrors"
	"public-auction/internal/models"
	"public-auction/internal/repository"
	"public-auction/utils"
)

// Registration rules
const (
	MinUsernameLen = 3
	MinPasswordLen = 5
)

// AuthService defines the business logic for registration and sign-in
type AuthService struct {
	users repository.UserDB
}

// NewAuthService creates a new AuthService instance
func NewAuthService(users repository.UserDB) *AuthService {
	return &AuthService{
		users: users,
	}
}

// Register validates and stores a new account, persisting it immediately
func (s *AuthService) Register(username, password, confirm string) error {
	if len(username) < MinUsernameLen || len(password) < MinPasswordLen {
		return fmt.Errorf("service: %w - username min %d chars, password min %d chars",
			auctionerrors.ErrWeakCredentials, MinUsernameLen, MinPasswordLen)
	}
	if password != confirm {
		return fmt.Errorf("service: %w", auctionerrors.ErrPasswordMismatch)
	}
	if s.users.Exists(username) {
		return fmt.Errorf("service: %w - %s", auctionerrors.ErrUserExists, username)
	}

	user := models.User{
		Username:     username,
		PasswordHash: repository.HashPassword(password),
	}
	if err := s.users.Add(user); err != nil {
		return fmt.Errorf("service: failed to register %s: %w", username, err)
	}

	utils.Info("user registered", map[string]any{
		"username":    username,
		"total_users": s.users.Count(),
	})
	return nil
}

// Authenticate checks credentials and opens a session on success. A match
// requires the exact username and an equal password hash.
func (s *AuthService) Authenticate(username, password string) (models.Session, error) {
	user, ok := s.users.Lookup(username)
	if !ok || user.PasswordHash != repository.HashPassword(password) {
		return models.Session{}, fmt.Errorf("service: %w", auctionerrors.ErrBadCredentials)
	}

	session := models.Session{
		SessionID: utils.GenerateID(),
		Username:  username,
	}
	utils.Info("user signed in", map[string]any{
		"session_id": session.SessionID,
		"username":   username,
	})
	return session, nil
}
