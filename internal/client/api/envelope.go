package api

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/tidwall/gjson"
)

const (
	LoginPath          = "/api/auth/login"
	GlobalSettingsPath = "/api/settings/global"
	BookListPath       = "/api/reader/stok/list"
	BookByBarcodePath  = "/api/stok/takeByBarkod/"
)

const (
	responsePath = "KiboApp.Response"
	dataPath     = "KiboApp.Response.data"
	tokenPath    = "KiboApp.Response.data.authorization.access_token"
)

// DecodeEnvelope unwraps a reply body into Envelope[T]. Bodies that are not
// JSON or lack the KiboApp.Response object yield ErrMalformed, as does a data
// payload that does not fit T. Metadata fields are read leniently: a code sent
// as a string or a message sent as a number never fails the decode.
func DecodeEnvelope[T any](body []byte) (*models.Envelope[T], error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrMalformed)
	}
	r := gjson.GetBytes(body, responsePath)
	if !r.IsObject() {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformed, responsePath)
	}

	resp := &models.Response[T]{
		AccessToken: r.Get("access_token").String(),
		Message:     r.Get("message").String(),
		ErrorCode:   r.Get("errorCode").String(),
		KiboCode:    int(r.Get("kiboCode").Int()),
		KiboMessage: r.Get("kiboMessage").String(),
		KiboType:    r.Get("kiboType").String(),
		PageError:   r.Get("pageError").String(),
		PageStatus:  int(r.Get("pageStatus").Int()),
		Path:        r.Get("path").String(),
		Timestamp:   r.Get("timestamp").String(),
	}
	if d := r.Get("data"); d.Exists() && d.Type != gjson.Null {
		if err := json.Unmarshal([]byte(d.Raw), &resp.Data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	return &models.Envelope[T]{KiboApp: &models.App[T]{Response: resp}}, nil
}

// LoginToken returns the access token nested in a login reply, or "".
func LoginToken(body []byte) string {
	return gjson.GetBytes(body, tokenPath).String()
}

// HasData reports whether the reply's data payload is present and non-empty
// (not null, not {}, not []).
func HasData(body []byte) bool {
	d := gjson.GetBytes(body, dataPath)
	switch {
	case !d.Exists(), d.Type == gjson.Null:
		return false
	case d.IsObject():
		return len(d.Map()) > 0
	case d.IsArray():
		return len(d.Array()) > 0
	case d.Type == gjson.String:
		return d.Str != ""
	default:
		return true
	}
}

// ServerMessage exposes the envelope message of a raw body.
func ServerMessage(body []byte) string {
	return serverMessage(body)
}
