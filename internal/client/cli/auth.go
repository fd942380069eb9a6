package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/client/session"
	"github.com/dmitrijs2005/bookstore/internal/i18n"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errLoginFailed = errors.New("login failed")

// Login prompts for whatever credentials were not given and exchanges them
// for a session token. The password buffer is wiped before returning.
func (a *App) Login(ctx context.Context, email string) error {
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, a.printer.Sprintf(i18n.MsgPromptEmail), a.out)
		if err != nil {
			return err
		}
	}

	password, err := getPassword(a.reader, a.printer.Sprintf(i18n.MsgPromptPassword), a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	_, err = a.authService.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	switch {
	case err == nil:
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, api.ErrTokenMissing):
		return fmt.Errorf("%w: %w", errLoginFailed, err)
	default:
		return err
	}

	a.println(i18n.MsgLoggedIn)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.println(i18n.MsgLoggedOut)
	return nil
}

// Status prints whether a token is stored and, when the token is a JWT, who
// it was issued to and when it expires. Nothing is sent to the server.
func (a *App) Status(ctx context.Context) error {
	token, ok := a.session.Token(ctx)
	if !ok {
		a.println(i18n.MsgNotLoggedIn)
		return nil
	}

	a.println(i18n.MsgSessionActive, session.Redact(token))
	if info, ok := session.Describe(token); ok {
		expires := "-"
		if !info.ExpiresAt.IsZero() {
			expires = info.ExpiresAt.Local().Format("2006-01-02 15:04")
		}
		a.println(i18n.MsgTokenClaims, info.Subject, expires)
	}
	return nil
}
