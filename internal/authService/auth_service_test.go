package auth

import (
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"public-auction/internal/auctionerrors"
	model "public-auction/internal/models"
	"public-auction/internal/repository"
)

// Tests Register
func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repository.NewMockUserDB(ctrl)
	service := NewAuthService(mockUsers)

	// Table-driven test cases
	tests := []struct {
		name          string
		username      string
		password      string
		confirm       string
		mockSetup     func()
		expectedError error
	}{
		{
			name:     "valid_registration",
			username: "alice",
			password: "password1",
			confirm:  "password1",
			mockSetup: func() {
				mockUsers.EXPECT().Exists("alice").Return(false)
				mockUsers.EXPECT().Add(model.User{
					Username:     "alice",
					PasswordHash: repository.HashPassword("password1"),
				}).Return(nil)
				mockUsers.EXPECT().Count().Return(1)
			},
		},
		{
			name:          "username_too_short",
			username:      "ab",
			password:      "password1",
			confirm:       "password1",
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrWeakCredentials,
		},
		{
			name:          "password_too_short",
			username:      "alice",
			password:      "pw",
			confirm:       "pw",
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrWeakCredentials,
		},
		{
			name:          "passwords_mismatch",
			username:      "alice",
			password:      "password1",
			confirm:       "password2",
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrPasswordMismatch,
		},
		{
			name:     "username_taken",
			username: "alice",
			password: "password1",
			confirm:  "password1",
			mockSetup: func() {
				mockUsers.EXPECT().Exists("alice").Return(true)
			},
			expectedError: auctionerrors.ErrUserExists,
		},
		{
			name:     "store_at_capacity",
			username: "zoe99",
			password: "password1",
			confirm:  "password1",
			mockSetup: func() {
				mockUsers.EXPECT().Exists("zoe99").Return(false)
				mockUsers.EXPECT().Add(gomock.Any()).Return(auctionerrors.ErrStoreFull)
			},
			expectedError: auctionerrors.ErrStoreFull,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			err := service.Register(tc.username, tc.password, tc.confirm)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Tests Authenticate
func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repository.NewMockUserDB(ctrl)
	service := NewAuthService(mockUsers)

	alice := model.User{Username: "alice", PasswordHash: repository.HashPassword("password1")}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func()
		wantError bool
	}{
		{
			name:     "valid_credentials",
			username: "alice",
			password: "password1",
			mockSetup: func() {
				mockUsers.EXPECT().Lookup("alice").Return(alice, true)
			},
			wantError: false,
		},
		{
			name:     "wrong_password",
			username: "alice",
			password: "wrong",
			mockSetup: func() {
				mockUsers.EXPECT().Lookup("alice").Return(alice, true)
			},
			wantError: true,
		},
		{
			name:     "unknown_username",
			username: "nobody",
			password: "password1",
			mockSetup: func() {
				mockUsers.EXPECT().Lookup("nobody").Return(model.User{}, false)
			},
			wantError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			session, err := service.Authenticate(tc.username, tc.password)
			if tc.wantError {
				require.ErrorIs(t, err, auctionerrors.ErrBadCredentials)
				require.False(t, session.Active())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.username, session.Username)
			require.True(t, session.Active())

			// SessionID must be a valid UUID
			_, err = uuid.Parse(session.SessionID)
			require.NoError(t, err)
		})
	}
}

// Register-then-authenticate scenario against a real file-backed store
func TestAuthService_RegisterAuthenticateScenario(t *testing.T) {
	t.Parallel()

	store := repository.NewFileUserStore(filepath.Join(t.TempDir(), "users.txt"))
	service := NewAuthService(store)

	require.NoError(t, service.Register("alice", "password1", "password1"))

	err := service.Register("alice", "password2", "password2")
	require.ErrorIs(t, err, auctionerrors.ErrUserExists)

	_, err = service.Authenticate("alice", "password1")
	require.NoError(t, err)

	_, err = service.Authenticate("alice", "wrong")
	require.ErrorIs(t, err, auctionerrors.ErrBadCredentials)
}
