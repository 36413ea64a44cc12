package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mkarpovs/accountd/internal/accounts"
	"github.com/mkarpovs/accountd/internal/storage/migrations"
)

type PostgresManager struct {
	db       *sql.DB
	accounts accounts.Repository
}

func (m *PostgresManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresManager opens the pool for the given DSN, applies pending
// migrations, and wires the account repository.
func NewPostgresManager(ctx context.Context, dsn string) (Manager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	repo, err := accounts.NewPostgresRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("account repo creation error: %w", err)
	}

	m := &PostgresManager{db: db, accounts: repo}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
