package repository

import (
	"context"

	"azulhomes/internal/domain/user"
	"azulhomes/internal/infra"
	"azulhomes/internal/pkg/pgconv"
	"azulhomes/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserAccount is a stored account row with the fields the identity flow
// needs beyond the public view.
type UserAccount struct {
	View         usecase.AuthUserView
	PasswordHash string
	IsActive     bool
}

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*UserAccount, error) {
	var account UserAccount
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, role, password_hash, is_active FROM users WHERE email = $1`,
		email,
	).Scan(
		&account.View.ID, &account.View.Email, &account.View.Name,
		&account.View.Role, &account.PasswordHash, &account.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &account, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.AuthUserView, error) {
	var view usecase.AuthUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, role FROM users WHERE id = $1 AND is_active`,
		id,
	).Scan(&view.ID, &view.Email, &view.Name, &view.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now(), now())`,
		u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
