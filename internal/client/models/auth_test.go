package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginData_KeepsPayloadRaw(t *testing.T) {
	payload := `{"authorization":{"access_token":"T1","expires_in":"3600"},"user":{"id":"7"}}`

	var d LoginData
	require.NoError(t, json.Unmarshal([]byte(payload), &d))
	assert.Equal(t, "T1", d.Authorization.AccessToken)
	assert.JSONEq(t, payload, string(d.Raw))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestLoginData_NoToken(t *testing.T) {
	for _, payload := range []string{`{}`, `[]`, `"x"`, `{"authorization":"none"}`} {
		var d LoginData
		require.NoError(t, json.Unmarshal([]byte(payload), &d), payload)
		assert.Empty(t, d.Authorization.AccessToken, payload)
	}
}

func TestSettings_Unmarshal(t *testing.T) {
	var s Settings
	require.NoError(t, json.Unmarshal([]byte(`{"stokSatisFiyatId":"12"}`), &s))
	require.NotNil(t, s.StockSalePriceID)
	assert.Equal(t, 12, *s.StockSalePriceID)

	require.NoError(t, json.Unmarshal([]byte(`{"stokSatisFiyatId":"retail"}`), &s))
	assert.Nil(t, s.StockSalePriceID)
}
