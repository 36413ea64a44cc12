// Package console is the embedded desktop entry point: an interactive
// command loop over the same account service the HTTP API uses. The session
// token obtained at login is held in memory only and is validated again
// before every guarded command, so both entry points go through the same
// gate.
package console

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/mkarpovs/accountd/internal/accounts"
	"github.com/mkarpovs/accountd/internal/auth"
)

type App struct {
	service *accounts.Service
	codec   *auth.Codec
	reader  *bufio.Reader
	out     io.Writer

	token string
	name  string
	role  accounts.Role
}

func NewApp(service *accounts.Service, codec *auth.Codec) *App {
	return &App{
		service: service,
		codec:   codec,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// sessionClaims validates the stored session token and returns its claims.
// No token yields (nil, nil): the service reports that as unauthenticated,
// same as a missing Authorization header on the network side. An expired or
// tampered token drops the session.
func (a *App) sessionClaims() (*auth.Claims, error) {
	if a.token == "" {
		return nil, nil
	}
	claims, err := a.codec.Validate(a.token)
	if err != nil {
		a.clearSession()
		return nil, err
	}
	return claims, nil
}

func (a *App) clearSession() {
	a.token = ""
	a.name = ""
	a.role = ""
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "not logged in"
	}
	return a.name + " (" + string(a.role) + ")"
}

// Run drives the interactive loop until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	printlnFn("accountd console (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
