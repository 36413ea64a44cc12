package accounts

import "context"

// Repository is the account directory: a keyed record store. The core only
// reads it to check credentials at login time; authorization decisions are
// made from the token alone, never from a fresh directory read.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByLogin(ctx context.Context, login string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id string) error
}
