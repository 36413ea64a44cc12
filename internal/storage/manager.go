// Package storage owns the PostgreSQL connection and schema lifecycle. The
// rest of the application sees only the Manager interface and the account
// repository it hands out.
package storage

import (
	"context"

	"github.com/mkarpovs/accountd/internal/accounts"
)

type Manager interface {
	RunMigrations(ctx context.Context) error
	Accounts() accounts.Repository
	Close() error
}
