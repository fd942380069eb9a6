package models

import "encoding/json"

// StatusSuccess is the kiboType value the server sets on successful replies.
const StatusSuccess = "success"

// Envelope is the fixed wrapper around every catalog API reply, success or
// failure: {"KiboApp": {"Response": {...}}}.
type Envelope[T any] struct {
	KiboApp *App[T] `json:"KiboApp,omitempty"`
}

type App[T any] struct {
	Response *Response[T] `json:"Response,omitempty"`
}

type Response[T any] struct {
	Data        T      `json:"data"`
	AccessToken string `json:"access_token,omitempty"`
	Message     string `json:"message,omitempty"`
	ErrorCode   string `json:"errorCode,omitempty"`
	KiboCode    int    `json:"kiboCode,omitempty"`
	KiboMessage string `json:"kiboMessage,omitempty"`
	KiboType    string `json:"kiboType,omitempty"`
	PageError   string `json:"pageError,omitempty"`
	PageStatus  int    `json:"pageStatus,omitempty"`
	Path        string `json:"path,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// Resp returns the inner response or nil when the envelope is incomplete.
func (e *Envelope[T]) Resp() *Response[T] {
	if e == nil || e.KiboApp == nil {
		return nil
	}
	return e.KiboApp.Response
}

// OK reports whether the server marked the reply as successful.
func (e *Envelope[T]) OK() bool {
	r := e.Resp()
	return r != nil && r.KiboType == StatusSuccess
}

// ServerMessage returns the most specific human-readable message present.
func (e *Envelope[T]) ServerMessage() string {
	r := e.Resp()
	if r == nil {
		return ""
	}
	if r.Message != "" {
		return r.Message
	}
	return r.KiboMessage
}

// RawEnvelope keeps the payload undecoded.
type RawEnvelope = Envelope[json.RawMessage]
