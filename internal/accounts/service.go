package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkarpovs/accountd/internal/auth"
	"github.com/mkarpovs/accountd/internal/logging"
)

// Service implements the account operations behind both entry points.
// Token-bearing operations take the verified claim as an explicit argument
// (there is no ambient per-call state) and re-check the role policy before
// touching the store, so no guarded operation can reach the directory with
// an unverified caller.
type Service struct {
	repo   Repository
	hasher *auth.Hasher
	codec  *auth.Codec
	logger logging.Logger
}

func NewService(repo Repository, hasher *auth.Hasher, codec *auth.Codec, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		codec:  codec,
		logger: logger.With("module", "accounts"),
	}
}

// LoginResult is what a successful login returns to either entry point.
type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

func validateFields(name, login string, role Role) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if login == "" {
		return fmt.Errorf("%w: login is required", ErrValidation)
	}
	if !role.Valid() {
		return fmt.Errorf("%w: role must be %q or %q", ErrValidation, RoleAdmin, RoleUser)
	}
	return nil
}

func (s *Service) createAccount(ctx context.Context, name, login, password string, role Role) error {
	name = strings.TrimSpace(name)
	login = strings.TrimSpace(login)

	if err := validateFields(name, login, role); err != nil {
		return err
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return ErrInternal
	}

	_, err = s.repo.Create(ctx, &Account{
		Name:         name,
		Login:        login,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrAlreadyExists
		}
		s.logger.Error(ctx, "account insert failed", "error", err)
		return ErrInternal
	}

	return nil
}

// Register creates a new account. It is an open operation: no claim needed,
// this is how the first credential is obtained. A duplicate login surfaces
// as ErrAlreadyExists; boundaries report it generically, without naming the
// cause.
func (s *Service) Register(ctx context.Context, name, login, password string, role Role) error {
	return s.createAccount(ctx, name, login, password, role)
}

// Login verifies credentials and issues a token. Unknown login and wrong
// password are indistinguishable to the caller: both come back as
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password are required", ErrValidation)
	}

	account, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return nil, ErrInternal
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "password verification failed", "error", err)
		return nil, ErrInternal
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(account.Login, string(account.Role))
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return nil, ErrInternal
	}

	return &LoginResult{Token: token, Name: account.Name, Role: account.Role}, nil
}

// Create adds an account on behalf of an admin. Same validation as Register,
// gated by the role policy first: failure ordering is authorization, then
// payload, then store.
func (s *Service) Create(ctx context.Context, claims *auth.Claims, name, login, password string, role Role) error {
	if err := auth.Authorize(claims, string(RoleAdmin)); err != nil {
		return err
	}
	return s.createAccount(ctx, name, login, password, role)
}

// List returns every account in its public shape. Admin only.
func (s *Service) List(ctx context.Context, claims *auth.Claims) ([]PublicAccount, error) {
	if err := auth.Authorize(claims, string(RoleAdmin)); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "listing accounts", "requested_by", claims.Login)

	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "account list failed", "error", err)
		return nil, ErrInternal
	}

	result := make([]PublicAccount, 0, len(records))
	for _, a := range records {
		result = append(result, a.Public())
	}
	return result, nil
}

// Update changes name, login and role of an existing account. Admin only;
// password change is out of scope.
func (s *Service) Update(ctx context.Context, claims *auth.Claims, id, name, login string, role Role) error {
	if err := auth.Authorize(claims, string(RoleAdmin)); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	login = strings.TrimSpace(login)
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := validateFields(name, login, role); err != nil {
		return err
	}

	err := s.repo.Update(ctx, &Account{ID: id, Name: name, Login: login, Role: role})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyExists) {
			return err
		}
		s.logger.Error(ctx, "account update failed", "error", err)
		return ErrInternal
	}

	return nil
}

// Delete removes an account. Admin only. Tokens already issued for the
// deleted account stay valid until they expire; there is no revocation.
func (s *Service) Delete(ctx context.Context, claims *auth.Claims, id string) error {
	if err := auth.Authorize(claims, string(RoleAdmin)); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "account delete failed", "error", err)
		return ErrInternal
	}

	return nil
}
