package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

// AuthService defines session operations for the front end.
//
// Contract:
//   - Login: exchange credentials for a token and persist it; the call only
//     succeeds once the token is confirmed stored.
//   - Logout: drop the stored token; no network call.
//   - IsAuthenticated: local check for a stored token; the server is not asked.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
}

type authService struct {
	api    Doer
	tokens TokenStore
	log    logging.Logger
}

func NewAuthService(client Doer, tokens TokenStore, log logging.Logger) AuthService {
	return &authService{api: client, tokens: tokens, log: log.With("service", "auth")}
}

// Login posts credentials to the login endpoint, extracts the issued token
// from the reply, stores it and returns the unwrapped reply.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return nil, api.ErrInvalidCredentials
	}

	a.log.Info(ctx, "sending login request", "email", creds.Email)

	resp, err := a.api.Do(ctx, api.Request{Method: http.MethodPost, Path: api.LoginPath, Body: creds})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	token := api.LoginToken(resp.Body)
	if token == "" {
		if msg := api.ServerMessage(resp.Body); msg != "" {
			return nil, fmt.Errorf("%w: %s", api.ErrTokenMissing, msg)
		}
		return nil, api.ErrTokenMissing
	}

	// the token is all a login needs; the rest of the reply is best effort
	env, err := api.DecodeEnvelope[models.LoginData](resp.Body)
	if err != nil {
		a.log.Warn(ctx, "login reply not fully decoded", "error", err)
		env = &models.Envelope[models.LoginData]{KiboApp: &models.App[models.LoginData]{
			Response: &models.Response[models.LoginData]{},
		}}
	}
	env.Resp().Data.Authorization.AccessToken = token

	if err := a.tokens.SetToken(ctx, token); err != nil {
		return nil, fmt.Errorf("%w: %w", api.ErrTokenPersistence, err)
	}

	a.log.Info(ctx, "login successful")
	return &models.LoginResult{Token: token, Envelope: env}, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.tokens.RemoveToken(ctx)
	a.log.Info(ctx, "logged out")
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	_, ok := a.tokens.Token(ctx)
	return ok
}
