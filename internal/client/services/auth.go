// Package services contains application services for the registration CLI.
package services

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/client/client"
)

// AuthService defines the account operations used by the CLI.
//
// Contract:
//   - Register: create an account on the server and keep its session token.
//   - Token: the token of the last successful registration, or "".
//   - Ping: check server liveness.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) error
	Token() string
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client

	mu    sync.Mutex
	token string
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

// Register trims name and email, then creates the account. The password is
// sent as typed.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) error {
	token, err := a.client.Register(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
	return nil
}

func (a *authService) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
