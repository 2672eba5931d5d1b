package usecase

import (
	"context"
	"errors"

	"azulhomes/internal/domain/user"
	"azulhomes/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

// AuthUserView is the signed-in user as the rest of the system sees it.
type AuthUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// IdentityService is the hosted identity collaborator, reduced to the three
// operations this system calls on it. Injectable so tests can substitute a
// double.
type IdentityService interface {
	SignIn(ctx context.Context, credentials user.Credentials) (*AuthUserView, error)
	SignOut(ctx context.Context) error
	SubscribeAuthState(fn func(*AuthUserView)) (unsubscribe func())
}

// RoleResolver derives a role for a signed-in email. Replaces a hardcoded
// administrator-address comparison with a pluggable check; not a security
// boundary, purely a UI gate.
type RoleResolver interface {
	Resolve(email string) user.Role
}

type AdminEmailResolver struct {
	adminEmail string
}

func NewAdminEmailResolver(adminEmail string) *AdminEmailResolver {
	return &AdminEmailResolver{adminEmail: adminEmail}
}

func (r *AdminEmailResolver) Resolve(email string) user.Role {
	if email == r.adminEmail {
		return user.RoleAdmin
	}
	return user.RoleUser
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthUserView, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *AuthUserView, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthUserView, error)
}

type authUseCaseImpl struct {
	identity   IdentityService
	users      UserReadStore
	jwtService *jwt.Service
}

func NewAuthUseCase(identity IdentityService, users UserReadStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		identity:   identity,
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *AuthUserView, error) {
	authUser, err := a.identity.SignIn(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(authUser.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(authUser.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, authUser, nil
}

func (a *authUseCaseImpl) Logout(ctx context.Context) error {
	return a.identity.SignOut(ctx)
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthUserView, error) {
	authUser, err := a.users.FindByID(ctx, userID)
	if err != nil || authUser == nil {
		return nil, ErrUserNotFound
	}
	return authUser, nil
}
