package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkarpovs/accountd/internal/dbx"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique-constraint errors.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts a new account. The login-availability check and the insert
// run in one transaction; the unique index on login backs it up, so a
// concurrent duplicate still surfaces as ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	account.ID = uuid.NewString()

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM accounts WHERE login = $1)`,
			account.Login).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
		if exists {
			return ErrAlreadyExists
		}

		query :=
			`INSERT INTO accounts (id, name, login, role, password_hash)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING created_at
			`
		err = tx.QueryRowContext(ctx, query,
			account.ID, account.Name, account.Login, account.Role, account.PasswordHash).
			Scan(&account.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*Account, error) {
	query :=
		`SELECT id, name, login, role, password_hash, created_at FROM accounts
		 WHERE login = $1
		`

	account := &Account{}
	err := r.db.QueryRowContext(ctx, query, login).
		Scan(&account.ID, &account.Name, &account.Login, &account.Role, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	query :=
		`SELECT id, name, login, role, password_hash, created_at FROM accounts
		 WHERE id = $1
		`

	account := &Account{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.Name, &account.Login, &account.Role, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Account, error) {
	query :=
		`SELECT id, name, login, role, created_at FROM accounts
		 ORDER BY created_at
		`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		account := &Account{}
		if err := rows.Scan(&account.ID, &account.Name, &account.Login, &account.Role, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// Update changes name, login and role of the account with the given ID.
// The password hash is never touched here.
func (r *PostgresRepository) Update(ctx context.Context, account *Account) error {
	query :=
		`UPDATE accounts SET name = $1, login = $2, role = $3
		 WHERE id = $4
		`

	res, err := r.db.ExecContext(ctx, query, account.Name, account.Login, account.Role, account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
