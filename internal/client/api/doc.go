// Package api is the HTTP access layer for the Kibo catalog API.
//
// # Overview
//
// Client sends JSON requests to a fixed base endpoint with a fixed timeout
// and default content headers. Two kinds of middleware run around each call:
//
//   - RequestHook runs before the request is sent and may modify it or abort
//     it by returning an error (BearerAuth aborts with ErrNoToken when no
//     session token is stored).
//   - ResponseHook runs after every round trip, successful or not, and may
//     augment the error or trigger side effects (InvalidateOnUnauthorized
//     purges the stored token on 401). Hooks never drop an error.
//
// Replies are wrapped in the server's envelope; DecodeEnvelope unwraps it.
//
// # Error Handling
//
// Failures are reported with sentinel errors matched via errors.Is:
// ErrNoToken, ErrUnauthorized, ErrNotFound, ErrServer, ErrNetwork, ErrTimeout,
// ErrMalformed. Non-2xx replies are *Error values carrying the status code and
// the server's message.
package api
