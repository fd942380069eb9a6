package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/client/api"
	"github.com/dmitrijs2005/bookstore/internal/i18n"
)

// Describe turns a command error into a localized message for the user.
func (a *App) Describe(err error) string {
	p := a.printer

	var (
		apiErr  *api.Error
		langErr *unsupportedLanguageError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, errLoginFailed):
		msg := strings.TrimPrefix(err.Error(), errLoginFailed.Error()+": ")
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return p.Sprintf(i18n.MsgLoginFailed, msg)
	case errors.As(err, &langErr):
		return p.Sprintf(i18n.MsgLanguageUnknown, langErr.code, supportedCodes())
	case errors.Is(err, api.ErrInvalidCredentials):
		return p.Sprintf(i18n.MsgBadCredentials)
	case errors.Is(err, api.ErrNoToken):
		return p.Sprintf(i18n.MsgLoginFirst)
	case errors.Is(err, api.ErrUnauthorized):
		return p.Sprintf(i18n.MsgSessionExpired)
	case errors.Is(err, api.ErrInvalidID):
		return p.Sprintf(i18n.MsgInvalidID)
	case errors.Is(err, api.ErrNotFound):
		return p.Sprintf(i18n.MsgBookNotFound)
	case errors.Is(err, api.ErrNetwork), errors.Is(err, api.ErrTimeout):
		return p.Sprintf(i18n.MsgNetworkError)
	case errors.As(err, &apiErr):
		return p.Sprintf(i18n.MsgRequestFailed, apiErr.Message)
	default:
		return p.Sprintf(i18n.MsgRequestFailed, err.Error())
	}
}
