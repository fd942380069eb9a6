package models

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Settings is the global settings object loaded before detail lookups.
type Settings struct {
	StockSalePriceID *int `json:"stokSatisFiyatId,omitempty"`
}

// UnmarshalJSON accepts the price list id as a number or a numeric string.
// Anything else leaves it unset; the settings object is informational and
// must not fail a lookup.
func (s *Settings) UnmarshalJSON(b []byte) error {
	s.StockSalePriceID = nil
	v := gjson.GetBytes(b, "stokSatisFiyatId")
	if v.Type != gjson.Number && v.Type != gjson.String {
		return nil
	}
	if n, err := strconv.Atoi(v.String()); err == nil {
		s.StockSalePriceID = &n
	}
	return nil
}
