package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product is a single SKU/variant as listed in a site snapshot.
type Product struct {
	Key          string              `json:"key"`
	Title        string              `json:"title"`
	VariantLabel string              `json:"variant_label"`
	Category     string              `json:"category"`
	URL          string              `json:"url"`
	Available    *bool               `json:"available"`
	MinPrice     decimal.NullDecimal `json:"min_price"`
	MaxPrice     decimal.NullDecimal `json:"max_price"`
}

// UnmarshalJSON decodes a product, dropping price bounds and availability
// values it cannot read instead of failing the whole document.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product

	aux := struct {
		*plain

		Available json.RawMessage `json:"available"`
		MinPrice  json.RawMessage `json:"min_price"`
		MaxPrice  json.RawMessage `json:"max_price"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err //nolint:wrapcheck // surfaced by the document decoder
	}

	p.MinPrice = decodeBound(aux.MinPrice)
	p.MaxPrice = decodeBound(aux.MaxPrice)

	p.Available = nil
	var available bool
	if len(aux.Available) > 0 && json.Unmarshal(aux.Available, &available) == nil &&
		string(aux.Available) != "null" {
		p.Available = &available
	}

	return nil
}

// Price returns the product's current price range.
func (p Product) Price() PriceRange {
	return NewPriceRange(p.MinPrice, p.MaxPrice)
}

// InStock reports availability. Only an explicit false means out of stock.
func (p Product) InStock() bool {
	return p.Available == nil || *p.Available
}
