package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PortfoliosRepo struct {
	pool *pgxpool.Pool
}

func NewPortfoliosRepo(pool *pgxpool.Pool) *PortfoliosRepo {
	return &PortfoliosRepo{pool: pool}
}

// Save upserts the single portfolio document a user owns.
func (r *PortfoliosRepo) Save(ctx context.Context, p *domain.Portfolio) error {
	docB, err := json.Marshal(p.Document)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO portfolios (id, user_id, document, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		p.ID, p.UserID, docB, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PortfoliosRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*domain.Portfolio, error) {
	p := &domain.Portfolio{}
	var docB []byte
	var created, updated time.Time
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, document, created_at, updated_at FROM portfolios WHERE user_id=$1`, userID).
		Scan(&p.ID, &p.UserID, &docB, &created, &updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(docB, &p.Document); err != nil {
		return nil, err
	}
	p.CreatedAt = created
	p.UpdatedAt = updated
	return p, nil
}

func (r *PortfoliosRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM portfolios WHERE user_id=$1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
