package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

var (
	ErrNoToken            = errors.New("no token")
	ErrTokenMissing       = errors.New("token missing in login response")
	ErrTokenPersistence   = errors.New("token could not be stored")
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidID          = errors.New("invalid book id")
	ErrNotFound           = errors.New("not found")
	ErrServer             = errors.New("server error")
	ErrNetwork            = errors.New("network error")
	ErrTimeout            = errors.New("request timed out")
	ErrMalformed          = errors.New("malformed response")
)

// Error is a non-2xx reply. Kind is one of the sentinels above.
type Error struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newStatusError(status int, body []byte) *Error {
	kind := ErrServer
	switch status {
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusNotFound:
		kind = ErrNotFound
	}

	msg := serverMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("request failed with status code %d", status)
	}

	return &Error{StatusCode: status, Message: msg, Kind: kind}
}

// serverMessage extracts the envelope's message, falling back to kiboMessage.
func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	r := gjson.GetManyBytes(body, "KiboApp.Response.message", "KiboApp.Response.kiboMessage")
	for _, v := range r {
		if s := v.String(); s != "" {
			return s
		}
	}
	return ""
}
