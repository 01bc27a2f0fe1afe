package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{Name: "create_users_table", Up: createUsersTable},
		{Name: "create_sessions_table", Up: createSessionsTable},
		{Name: "create_portfolios_table", Up: createPortfoliosTable},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func createUsersTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func createSessionsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			token UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func createPortfoliosTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS portfolios (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			document JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}
