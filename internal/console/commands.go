package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarpovs/accountd/internal/accounts"
)

func (a *App) promptAccountFields() (name, login string, role accounts.Role, err error) {
	name, err = GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return "", "", "", err
	}
	login, err = GetSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return "", "", "", err
	}
	roleText, err := GetSimpleText(a.reader, "Enter role (admin or user)", a.out)
	if err != nil {
		return "", "", "", err
	}
	return name, login, accounts.Role(roleText), nil
}

func (a *App) report(err error) error {
	fmt.Fprintln(a.out, err.Error())
	return err
}

// Register creates a new account. Open to anyone at the keyboard, same as
// the network register endpoint.
func (a *App) Register(ctx context.Context) error {
	name, login, role, err := a.promptAccountFields()
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	if err := a.service.Register(ctx, name, login, password, role); err != nil {
		if errors.Is(err, accounts.ErrValidation) {
			return a.report(err)
		}
		// same opaque wording as the network side
		fmt.Fprintln(a.out, "failed to register user")
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login verifies credentials and keeps the issued token for the session.
func (a *App) Login(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	result, err := a.service.Login(ctx, login, password)
	if err != nil {
		return a.report(err)
	}

	a.token = result.Token
	a.name = result.Name
	a.role = result.Role

	fmt.Fprintf(a.out, "Welcome, %s!\n", result.Name)
	return nil
}

// Whoami decodes the current session token and shows who it says we are.
func (a *App) Whoami(ctx context.Context) error {
	claims, err := a.sessionClaims()
	if err != nil {
		return a.report(err)
	}
	if claims == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "login: %s\nrole: %s\nexpires: %s\n",
		claims.Login, claims.Role, claims.ExpiresAt.Time.Format("15:04:05"))
	return nil
}

// Create adds an account as an administrator.
func (a *App) Create(ctx context.Context) error {
	claims, err := a.sessionClaims()
	if err != nil {
		return a.report(err)
	}

	name, login, role, err := a.promptAccountFields()
	if err != nil {
		return a.report(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.report(err)
	}

	if err := a.service.Create(ctx, claims, name, login, password, role); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "User created")
	return nil
}

// List prints every account in its public shape.
func (a *App) List(ctx context.Context) error {
	claims, err := a.sessionClaims()
	if err != nil {
		return a.report(err)
	}

	records, err := a.service.List(ctx, claims)
	if err != nil {
		return a.report(err)
	}

	for _, item := range records {
		fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", item.ID, item.Login, item.Name, item.Role)
	}
	return nil
}

// Update changes an existing account's name, login and role.
func (a *App) Update(ctx context.Context) error {
	claims, err := a.sessionClaims()
	if err != nil {
		return a.report(err)
	}

	id, err := GetSimpleText(a.reader, "Enter account id", a.out)
	if err != nil {
		return a.report(err)
	}
	name, login, role, err := a.promptAccountFields()
	if err != nil {
		return a.report(err)
	}

	if err := a.service.Update(ctx, claims, id, name, login, role); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "User updated")
	return nil
}

// Delete removes an account by id.
func (a *App) Delete(ctx context.Context) error {
	claims, err := a.sessionClaims()
	if err != nil {
		return a.report(err)
	}

	id, err := GetSimpleText(a.reader, "Enter account id", a.out)
	if err != nil {
		return a.report(err)
	}

	if err := a.service.Delete(ctx, claims, id); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "User deleted")
	return nil
}

// Logout forgets the session token. The token itself stays valid until it
// expires; there is no server-side revocation.
func (a *App) Logout(ctx context.Context) error {
	a.clearSession()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
