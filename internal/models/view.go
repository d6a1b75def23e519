package models

// The types below form the resolved view-model handed to renderers. Every
// cross reference is already inlined; renderers only map fields to markup.

// Tone is a display hint for badges and tags.
type Tone string

const (
	ToneOK  Tone = "ok"
	ToneErr Tone = "err"
)

// Pill is a labelled counter.
type Pill struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ChangeRow is one change line in a change panel.
type ChangeRow struct {
	Key      string     `json:"key"`
	Type     ChangeType `json:"type"`
	Tag      string     `json:"tag"`
	Title    string     `json:"title"`
	URL      string     `json:"url"`
	Category string     `json:"category"`
	Variant  string     `json:"variant,omitempty"`
	Extra    string     `json:"extra,omitempty"`
}

// ChangeSection is a titled group of change rows.
type ChangeSection struct {
	Title string      `json:"title"`
	Count int         `json:"count"`
	Rows  []ChangeRow `json:"rows"`
}

// ChangesByCategory - changes grouped by category, capped for display.
type ChangesByCategory struct {
	Total    int             `json:"total"`
	Shown    int             `json:"shown"`
	Sections []ChangeSection `json:"sections"`
	Empty    string          `json:"empty,omitempty"`
}

// ChangesByType - changes grouped by type in the fixed type order.
type ChangesByType struct {
	Header   string          `json:"header"`
	Total    int             `json:"total"`
	Sections []ChangeSection `json:"sections"`
	Empty    string          `json:"empty,omitempty"`
}

// Annotation is the change information attached to a product row.
type Annotation struct {
	Type      ChangeType `json:"type"`
	Tag       string     `json:"tag"`
	PriceNote string     `json:"price_note,omitempty"`
}

// ProductRow is one product line.
type ProductRow struct {
	Key        string      `json:"key"`
	Title      string      `json:"title"`
	URL        string      `json:"url"`
	Variant    string      `json:"variant,omitempty"`
	Price      string      `json:"price"`
	InStock    bool        `json:"in_stock"`
	Stock      string      `json:"stock"`
	StockTone  Tone        `json:"stock_tone"`
	Annotation *Annotation `json:"annotation,omitempty"`
}

// ProductSection is one category of the product listing. Count is the size of
// the full category, Rows may be shorter.
type ProductSection struct {
	Category string       `json:"category"`
	Count    int          `json:"count"`
	Rows     []ProductRow `json:"rows"`
}

// ProductListing - the per-category product detail panel.
type ProductListing struct {
	Header   string           `json:"header"`
	Total    int              `json:"total"`
	Sections []ProductSection `json:"sections"`
	Empty    string           `json:"empty,omitempty"`
}

// BestsellerListing - the bestseller panel.
type BestsellerListing struct {
	Header string       `json:"header"`
	Total  int          `json:"total"`
	Rows   []ProductRow `json:"rows"`
	Empty  string       `json:"empty,omitempty"`
}

// SiteView is the fully resolved display structure of one site.
type SiteView struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	BaseURL   string `json:"base_url"`
	OK        bool   `json:"ok"`
	Badge     string `json:"badge"`
	BadgeTone Tone   `json:"badge_tone"`
	HeadNote  string `json:"head_note"`

	StatusPills []Pill `json:"status_pills"`
	ChangePills []Pill `json:"change_pills"`
	BucketPills []Pill `json:"bucket_pills"`

	ChangesByCategory ChangesByCategory `json:"changes_by_category"`
	ChangesByType     ChangesByType     `json:"changes_by_type"`
	Products          ProductListing    `json:"products"`
	Bestsellers       BestsellerListing `json:"bestsellers"`
}

// ErrorView is one line of the errors list.
type ErrorView struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// DashboardView is the whole page.
type DashboardView struct {
	Meta        string      `json:"meta"`
	Overview    []Pill      `json:"overview"`
	Sites       []SiteView  `json:"sites"`
	Errors      []ErrorView `json:"errors"`
	ErrorsEmpty string      `json:"errors_empty,omitempty"`
}

// Site finds a site view by key.
func (d *DashboardView) Site(key string) (SiteView, bool) {
	for _, s := range d.Sites {
		if s.Key == key {
			return s, true
		}
	}

	return SiteView{}, false
}
