package identity

import (
	"context"
	"sync"

	"azulhomes/internal/domain/user"
	"azulhomes/internal/infra"
	"azulhomes/internal/infra/repository"
	"azulhomes/internal/pkg/password"
	"azulhomes/internal/usecase"

	"github.com/google/uuid"
)

// AccountStore is the slice of the user repository the identity service
// depends on.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*repository.UserAccount, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// Service implements the identity collaborator against the users collection.
// It also fans out auth-state changes to subscribers, mirroring the hosted
// provider's change feed.
type Service struct {
	accounts AccountStore
	roles    usecase.RoleResolver

	mu      sync.Mutex
	current *usecase.AuthUserView
	nextSub int
	subs    map[int]func(*usecase.AuthUserView)
}

func NewService(accounts AccountStore, roles usecase.RoleResolver) *Service {
	return &Service{
		accounts: accounts,
		roles:    roles,
		subs:     make(map[int]func(*usecase.AuthUserView)),
	}
}

func (s *Service) SignIn(ctx context.Context, credentials user.Credentials) (*usecase.AuthUserView, error) {
	account, err := s.accounts.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, usecase.ErrInvalidCredentials
		}
		return nil, usecase.ErrAuthenticationFailed
	}

	if err := password.ComparePassword(account.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, usecase.ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, usecase.ErrUserInactive
	}

	view := account.View
	view.Role = s.roles.Resolve(view.Email).String()

	// Best effort; a failed timestamp update must not block sign-in.
	_ = s.accounts.UpdateLastLogin(ctx, view.ID)

	s.setCurrent(&view)
	return &view, nil
}

func (s *Service) SignOut(ctx context.Context) error {
	s.setCurrent(nil)
	return nil
}

// SubscribeAuthState registers fn for sign-in and sign-out notifications and
// immediately delivers the current state.
func (s *Service) SubscribeAuthState(fn func(*usecase.AuthUserView)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) setCurrent(view *usecase.AuthUserView) {
	s.mu.Lock()
	s.current = view
	subs := make([]func(*usecase.AuthUserView), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(view)
	}
}
