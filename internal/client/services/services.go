// Package services contains the application services of the bookstore
// client: authentication, global settings and the book catalog. Each service
// is an interface with a private implementation built on an api transport and
// the injected session state.
package services

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
)

// Doer sends one API request. *api.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, r api.Request) (*api.Response, error)
}

// TokenStore is the session state the auth service manages.
type TokenStore interface {
	Token(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string) error
	RemoveToken(ctx context.Context)
}

func requireToken(ctx context.Context, tokens api.TokenSource) error {
	if _, ok := tokens.Token(ctx); !ok {
		return api.ErrNoToken
	}
	return nil
}
