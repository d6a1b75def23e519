package models

// SiteStatus is the health variant of a site snapshot.
type SiteStatus string

const (
	SiteStatusOK    SiteStatus = "ok"
	SiteStatusError SiteStatus = "error"
)

const (
	defaultCurrencySymbol = "€"
	defaultSiteKey        = "site"
)

// ProductStatus - total, in-stock and out-of-stock SKU counts.
type ProductStatus struct {
	Total   int `json:"total"`
	InStock int `json:"in_stock"`
	OOS     int `json:"oos"`
}

// Site is one monitored storefront snapshot. It is never mutated once decoded.
type Site struct {
	ID                 string               `json:"site_id"`
	Name               string               `json:"name"`
	BaseURL            string               `json:"base_url"`
	Status             SiteStatus           `json:"status"`
	Error              string               `json:"error"`
	CurrencyCode       string               `json:"currency_code"`
	CurrencySymbol     string               `json:"currency_symbol"`
	ProductStatus      ProductStatus        `json:"product_status"`
	Counts             ChangeCounts         `json:"counts"`
	PriceBucketsTotal  map[string]int       `json:"price_buckets_total"`
	Changes            []Change             `json:"changes"`
	ProductsByCategory map[string][]Product `json:"products_by_category"`
	Bestsellers        []Product            `json:"bestsellers"`
	ProductTotal       int                  `json:"product_total"`
}

// Key returns the identity used to group the site's detail panels.
func (s Site) Key() string {
	switch {
	case s.ID != "":
		return s.ID
	case s.Name != "":
		return s.Name
	default:
		return defaultSiteKey
	}
}

// OK reports whether the snapshot was fetched successfully.
func (s Site) OK() bool {
	return s.Status == SiteStatusOK
}

// Normalized returns a copy with scalar defaults filled in. Nested records are
// shared with the receiver and left untouched.
func (s Site) Normalized() Site {
	if s.CurrencySymbol == "" {
		s.CurrencySymbol = defaultCurrencySymbol
	}
	if s.Name == "" {
		s.Name = s.ID
	}

	return s
}
