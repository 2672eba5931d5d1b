//go:build unit

package identity_test

import (
	"context"
	"testing"

	"azulhomes/internal/domain/user"
	"azulhomes/internal/infra"
	"azulhomes/internal/infra/identity"
	"azulhomes/internal/infra/repository"
	"azulhomes/internal/pkg/password"
	"azulhomes/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountStore struct {
	accounts   map[string]*repository.UserAccount
	lastLogins []uuid.UUID
}

func (f *fakeAccountStore) FindByEmail(_ context.Context, email string) (*repository.UserAccount, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, infra.NewRepositoryError(infra.KindNotFound, "user not found")
	}
	cp := *account
	return &cp, nil
}

func (f *fakeAccountStore) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	f.lastLogins = append(f.lastLogins, id)
	return nil
}

func seedAccount(t *testing.T, email, plain string, active bool) *repository.UserAccount {
	t.Helper()
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)
	return &repository.UserAccount{
		View: usecase.AuthUserView{
			ID:    uuid.New(),
			Email: email,
			Name:  "Admin User",
			Role:  "user",
		},
		PasswordHash: hash,
		IsActive:     active,
	}
}

func mustCredentials(t *testing.T, email, plain string) user.Credentials {
	t.Helper()
	creds, err := user.NewCredentials(email, plain)
	require.NoError(t, err)
	return creds
}

func TestServiceSignIn(t *testing.T) {
	ctx := context.Background()
	resolver := usecase.NewAdminEmailResolver("admin@azulhomes.com")

	t.Run("success: resolves the admin role and records the login", func(t *testing.T) {
		store := &fakeAccountStore{accounts: map[string]*repository.UserAccount{
			"admin@azulhomes.com": seedAccount(t, "admin@azulhomes.com", "sup3r-secret", true),
		}}
		svc := identity.NewService(store, resolver)

		view, err := svc.SignIn(ctx, mustCredentials(t, "admin@azulhomes.com", "sup3r-secret"))
		require.NoError(t, err)
		assert.Equal(t, "admin", view.Role)
		assert.Equal(t, "admin@azulhomes.com", view.Email)
		require.Len(t, store.lastLogins, 1)
		assert.Equal(t, view.ID, store.lastLogins[0])
	})

	t.Run("success: other accounts keep the user role", func(t *testing.T) {
		store := &fakeAccountStore{accounts: map[string]*repository.UserAccount{
			"guest@example.com": seedAccount(t, "guest@example.com", "sup3r-secret", true),
		}}
		svc := identity.NewService(store, resolver)

		view, err := svc.SignIn(ctx, mustCredentials(t, "guest@example.com", "sup3r-secret"))
		require.NoError(t, err)
		assert.Equal(t, "user", view.Role)
	})

	t.Run("error: unknown email reads as invalid credentials", func(t *testing.T) {
		svc := identity.NewService(&fakeAccountStore{accounts: map[string]*repository.UserAccount{}}, resolver)

		_, err := svc.SignIn(ctx, mustCredentials(t, "nobody@example.com", "sup3r-secret"))
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		store := &fakeAccountStore{accounts: map[string]*repository.UserAccount{
			"guest@example.com": seedAccount(t, "guest@example.com", "sup3r-secret", true),
		}}
		svc := identity.NewService(store, resolver)

		_, err := svc.SignIn(ctx, mustCredentials(t, "guest@example.com", "wrong-password"))
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
		assert.Empty(t, store.lastLogins)
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		store := &fakeAccountStore{accounts: map[string]*repository.UserAccount{
			"guest@example.com": seedAccount(t, "guest@example.com", "sup3r-secret", false),
		}}
		svc := identity.NewService(store, resolver)

		_, err := svc.SignIn(ctx, mustCredentials(t, "guest@example.com", "sup3r-secret"))
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}

func TestServiceAuthState(t *testing.T) {
	ctx := context.Background()
	resolver := usecase.NewAdminEmailResolver("admin@azulhomes.com")
	store := &fakeAccountStore{accounts: map[string]*repository.UserAccount{
		"guest@example.com": seedAccount(t, "guest@example.com", "sup3r-secret", true),
	}}
	svc := identity.NewService(store, resolver)

	var states []*usecase.AuthUserView
	unsubscribe := svc.SubscribeAuthState(func(v *usecase.AuthUserView) {
		states = append(states, v)
	})

	// Subscription delivers the current (signed-out) state immediately.
	require.Len(t, states, 1)
	assert.Nil(t, states[0])

	_, err := svc.SignIn(ctx, mustCredentials(t, "guest@example.com", "sup3r-secret"))
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.NotNil(t, states[1])
	assert.Equal(t, "guest@example.com", states[1].Email)

	require.NoError(t, svc.SignOut(ctx))
	require.Len(t, states, 3)
	assert.Nil(t, states[2])

	unsubscribe()
	_, err = svc.SignIn(ctx, mustCredentials(t, "guest@example.com", "sup3r-secret"))
	require.NoError(t, err)
	assert.Len(t, states, 3)
}
