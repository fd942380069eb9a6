package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/google/uuid"
)

// RequestHook inspects or modifies an outgoing request. A non-nil error
// aborts the call before anything is sent.
type RequestHook func(ctx context.Context, req *http.Request) error

// ResponseHook sees the outcome of every round trip. It returns the error the
// caller should observe; returning nil for a non-nil err is not allowed.
type ResponseHook func(ctx context.Context, req *http.Request, resp *Response, err error) error

// TokenSource yields the current bearer token.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Session is the token state the hooks operate on.
type Session interface {
	TokenSource
	RemoveToken(ctx context.Context)
}

const RequestIDHeader = "X-Request-ID"

// BearerAuth attaches "Authorization: Bearer <token>" to every request whose
// path does not end with one of publicPaths. With no token stored the request
// is aborted with ErrNoToken.
func BearerAuth(tokens TokenSource, publicPaths ...string) RequestHook {
	return func(ctx context.Context, req *http.Request) error {
		for _, p := range publicPaths {
			if strings.HasSuffix(req.URL.Path, p) {
				return nil
			}
		}

		token, ok := tokens.Token(ctx)
		if !ok {
			return ErrNoToken
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}

// RequestID tags each request with a fresh UUID unless one is already set.
func RequestID() RequestHook {
	return func(_ context.Context, req *http.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.Header.Set(RequestIDHeader, uuid.NewString())
		}
		return nil
	}
}

// InvalidateOnUnauthorized removes the stored token when the server answers
// 401. The error is returned unchanged.
func InvalidateOnUnauthorized(sess Session) ResponseHook {
	return func(ctx context.Context, _ *http.Request, _ *Response, err error) error {
		if errors.Is(err, ErrUnauthorized) {
			sess.RemoveToken(ctx)
		}
		return err
	}
}

// LogResponses logs every outcome: successes at debug, failures at error.
func LogResponses(log logging.Logger) ResponseHook {
	return func(ctx context.Context, req *http.Request, resp *Response, err error) error {
		args := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", req.Header.Get(RequestIDHeader),
		}
		if resp != nil {
			args = append(args, "status", resp.StatusCode)
		}
		if err != nil {
			log.Error(ctx, "API error", append(args, "err", err)...)
			return err
		}
		log.Debug(ctx, "API response", args...)
		return nil
	}
}

// SessionHooks returns the standard middleware for a session-bound client:
// request IDs and bearer auth (login exempt) before sending, logging and 401
// invalidation after.
func SessionHooks(sess Session, log logging.Logger) ([]RequestHook, []ResponseHook) {
	return []RequestHook{
			RequestID(),
			BearerAuth(sess, LoginPath),
		}, []ResponseHook{
			LogResponses(log),
			InvalidateOnUnauthorized(sess),
		}
}
