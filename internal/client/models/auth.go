package models

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Credentials are sent once to the login endpoint and never stored.
// Email frequently carries a plain username.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authorization is the token block nested in the login payload. Only the
// token is interpreted.
type Authorization struct {
	AccessToken string `json:"access_token"`
}

// LoginData is the login payload. Everything but the token stays raw, so
// server-side additions never break a login.
type LoginData struct {
	Authorization Authorization   `json:"-"`
	Raw           json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the payload as is and picks the token out of it.
func (d *LoginData) UnmarshalJSON(b []byte) error {
	d.Raw = append(d.Raw[:0], b...)
	d.Authorization.AccessToken = gjson.GetBytes(b, "authorization.access_token").String()
	return nil
}

// MarshalJSON writes the raw payload back out.
func (d LoginData) MarshalJSON() ([]byte, error) {
	if len(d.Raw) == 0 {
		return []byte("null"), nil
	}
	return d.Raw, nil
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token    string
	Envelope *Envelope[LoginData]
}
