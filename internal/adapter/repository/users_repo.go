package repository

import (
	"context"
	"errors"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var ErrNotFound = errors.New("not found")

type UsersRepo struct {
	pool *pgxpool.Pool
}

func NewUsersRepo(pool *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{pool: pool}
}

func (r *UsersRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
	return err
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := r.pool.QueryRow(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UsersRepo) CreateSession(ctx context.Context, s *domain.Session) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id, expires_at = EXCLUDED.expires_at`,
		s.Token, s.UserID, s.ExpiresAt)
	return err
}

// ResolveSession returns the owning user id for a live session token.
func (r *UsersRepo) ResolveSession(ctx context.Context, token uuid.UUID) (uuid.UUID, error) {
	var userID uuid.UUID
	var expires time.Time
	err := r.pool.QueryRow(ctx, `SELECT user_id, expires_at FROM sessions WHERE token=$1`, token).
		Scan(&userID, &expires)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	if time.Now().After(expires) {
		return uuid.Nil, ErrNotFound
	}
	return userID, nil
}
