package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PriceBuckets lists the fixed price bands in display order.
var PriceBuckets = []string{"0-50", "50-100", "100-150", "150-200", "200+"} //nolint:gochecknoglobals // fixed display contract

// PriceRange is a (min, max) pair of prices. A single price is represented as
// equal bounds; either bound may be absent.
type PriceRange struct {
	Min decimal.NullDecimal
	Max decimal.NullDecimal
}

// NewPriceRange builds a range from two optional bounds.
func NewPriceRange(minPrice, maxPrice decimal.NullDecimal) PriceRange {
	return PriceRange{Min: minPrice, Max: maxPrice}
}

// SinglePrice builds a range where both bounds equal the given value.
func SinglePrice(v decimal.Decimal) PriceRange {
	nd := decimal.NewNullDecimal(v)
	return PriceRange{Min: nd, Max: nd}
}

// IsAbsent reports whether both bounds are missing.
func (r PriceRange) IsAbsent() bool {
	return !r.Min.Valid && !r.Max.Valid
}

// UnmarshalJSON accepts null, or a one/two element array whose items may be null.
// Anything else degrades to an absent range instead of failing the document.
func (r *PriceRange) UnmarshalJSON(data []byte) error {
	*r = PriceRange{}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var bounds []json.RawMessage
	if err := json.Unmarshal(data, &bounds); err != nil {
		return nil //nolint:nilerr // malformed ranges render as empty text
	}

	switch {
	case len(bounds) >= 2: //nolint:mnd // (min, max)
		r.Min, r.Max = decodeBound(bounds[0]), decodeBound(bounds[1])
	case len(bounds) == 1:
		r.Min = decodeBound(bounds[0])
		r.Max = r.Min
	}

	return nil
}

// decodeBound reads one optional price. Missing, null and non-numeric values
// all yield an invalid bound.
func decodeBound(raw json.RawMessage) decimal.NullDecimal {
	var nd decimal.NullDecimal
	if len(raw) == 0 {
		return nd
	}

	if err := json.Unmarshal(raw, &nd); err != nil {
		return decimal.NullDecimal{}
	}

	return nd
}

// MarshalJSON writes the range back as a two element array, or null when absent.
func (r PriceRange) MarshalJSON() ([]byte, error) {
	if r.IsAbsent() {
		return []byte("null"), nil
	}

	return json.Marshal([]decimal.NullDecimal{r.Min, r.Max})
}
