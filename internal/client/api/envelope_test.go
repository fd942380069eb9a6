package api

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope[models.Settings]([]byte(`{"KiboApp":{"Response":{"kiboType":"success","data":{"stokSatisFiyatId":3}}}}`))
	require.NoError(t, err)
	require.True(t, env.OK())
	require.NotNil(t, env.Resp().Data.StockSalePriceID)
	assert.Equal(t, 3, *env.Resp().Data.StockSalePriceID)
}

func TestDecodeEnvelope_Malformed(t *testing.T) {
	for _, body := range []string{
		``,
		`not json`,
		`{}`,
		`{"KiboApp":{}}`,
		`{"KiboApp":{"Response":"x"}}`,
		`{"KiboApp":{"Response":{"data":"not-an-object"}}}`,
	} {
		_, err := DecodeEnvelope[models.BookList]([]byte(body))
		assert.ErrorIs(t, err, ErrMalformed, "body %q", body)
	}
}

func TestDecodeEnvelope_LenientMetadata(t *testing.T) {
	body := `{"KiboApp":{"Response":{"kiboType":"success","kiboCode":"200","pageStatus":"1","message":7,"timestamp":1700000000,"data":{"stok":{"id":9}}}}}`

	env, err := DecodeEnvelope[models.BookDetail]([]byte(body))
	require.NoError(t, err)
	assert.True(t, env.OK())
	assert.Equal(t, 200, env.Resp().KiboCode)
	assert.Equal(t, 1, env.Resp().PageStatus)
	assert.Equal(t, "7", env.Resp().Message)
	assert.Equal(t, "1700000000", env.Resp().Timestamp)
	require.NotNil(t, env.Resp().Data.Stok)
	assert.Equal(t, int64(9), env.Resp().Data.Stok.ID)
}

func TestDecodeEnvelope_NullData(t *testing.T) {
	env, err := DecodeEnvelope[models.BookDetail]([]byte(`{"KiboApp":{"Response":{"data":null,"message":"none"}}}`))
	require.NoError(t, err)
	assert.Nil(t, env.Resp().Data.Stok)
	assert.Equal(t, "none", env.ServerMessage())
}

func TestLoginToken(t *testing.T) {
	body := `{"KiboApp":{"Response":{"data":{"authorization":{"access_token":"T1"}}}}}`
	assert.Equal(t, "T1", LoginToken([]byte(body)))
	assert.Empty(t, LoginToken([]byte(`{"KiboApp":{"Response":{"data":{}}}}`)))
	assert.Empty(t, LoginToken([]byte(`garbage`)))
}

func TestHasData(t *testing.T) {
	tests := map[string]bool{
		`{"KiboApp":{"Response":{}}}`:                         false,
		`{"KiboApp":{"Response":{"data":null}}}`:              false,
		`{"KiboApp":{"Response":{"data":{}}}}`:                false,
		`{"KiboApp":{"Response":{"data":[]}}}`:                false,
		`{"KiboApp":{"Response":{"data":""}}}`:                false,
		`{"KiboApp":{"Response":{"data":{"stok":{}}}}}`:       true,
		`{"KiboApp":{"Response":{"data":[1]}}}`:               true,
		`{"KiboApp":{"Response":{"data":0}}}`:                 true,
		`{"KiboApp":{"Response":{"data":{"stok":{"id":1}}}}}`: true,
	}
	for body, want := range tests {
		assert.Equal(t, want, HasData([]byte(body)), body)
	}
}

func TestServerMessage(t *testing.T) {
	raw, err := json.Marshal(map[string]any{"KiboApp": map[string]any{"Response": map[string]any{"kiboMessage": "only kibo"}}})
	require.NoError(t, err)
	assert.Equal(t, "only kibo", ServerMessage(raw))
	assert.Empty(t, ServerMessage([]byte(`{]`)))
}
