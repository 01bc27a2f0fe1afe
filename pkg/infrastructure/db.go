package infrastructure

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/config"
)

func NewPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, config.LoadDBConfig().URL)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
