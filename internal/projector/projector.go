// Package projector turns decoded site snapshots into resolved view-models.
// All functions are pure: no I/O, no errors, inputs are never modified.
package projector

import (
	"fmt"

	"github.com/Houeta/shelf-watch/internal/classifier"
	"github.com/Houeta/shelf-watch/internal/format"
	"github.com/Houeta/shelf-watch/internal/grouping"
	"github.com/Houeta/shelf-watch/internal/models"
)

// Display caps. Counters and section headers always use the full data.
const (
	MaxCategoryChanges     = 400
	MaxProductsPerCategory = 300
	MaxBestsellers         = 20
)

const (
	fallbackURL = "#"

	emptyChangesByCategory = "No changes detected."
	emptyChangesByType     = "No changed SKUs."
	emptyProducts          = "No product details."
	emptyBestsellers       = "No bestseller collection found (the site may not provide one)."
	emptyErrors            = "No errors."

	stockIn  = "in stock"
	stockOut = "out of stock"
)

// Project builds the view of one site.
func Project(site models.Site) models.SiteView {
	site = site.Normalized()
	sym := site.CurrencySymbol

	view := models.SiteView{
		Key:         site.Key(),
		Name:        site.Name,
		BaseURL:     site.BaseURL,
		OK:          site.OK(),
		StatusPills: statusPills(site.ProductStatus),
		ChangePills: changePills(site.Counts),
		BucketPills: bucketPills(site.PriceBucketsTotal, sym),
	}

	if view.OK {
		view.Badge, view.BadgeTone = "ok", models.ToneOK
		view.HeadNote = "currency: " + site.CurrencyCode
	} else {
		view.Badge, view.BadgeTone = "error", models.ToneErr
		view.HeadNote = site.Error
	}

	view.ChangesByCategory = changesByCategory(site.Changes, sym)
	view.ChangesByType = changesByType(site.Changes, sym)

	changeIndex := grouping.IndexBy(site.Changes, func(c models.Change) string { return c.Key })
	view.Products = productListing(site, changeIndex)
	view.Bestsellers = bestsellerListing(site.Bestsellers, sym)

	return view
}

// Overview builds the page-level meta line and global change pills.
func Overview(sum models.Summary) (string, []models.Pill) {
	meta := fmt.Sprintf(
		"Last run (UTC): %s · Sites OK: %d · Sites Error: %d",
		sum.TimeUTC, sum.SitesOK, sum.SitesError,
	)

	return meta, changePills(sum.Totals)
}

// Dashboard projects a whole snapshot.
func Dashboard(snap models.Snapshot) models.DashboardView {
	meta, overview := Overview(snap.Summary)

	view := models.DashboardView{
		Meta:     meta,
		Overview: overview,
		Sites:    make([]models.SiteView, 0, len(snap.Sites)),
	}

	for _, site := range snap.Sites {
		view.Sites = append(view.Sites, Project(site))
	}

	for _, e := range snap.Errors {
		view.Errors = append(view.Errors, models.ErrorView{Name: e.Name, Message: e.Error})
	}
	if len(view.Errors) == 0 {
		view.ErrorsEmpty = emptyErrors
	}

	return view
}

func statusPills(ps models.ProductStatus) []models.Pill {
	return []models.Pill{
		{Value: ps.Total, Label: "total SKUs"},
		{Value: ps.InStock, Label: "in-stock SKUs"},
		{Value: ps.OOS, Label: "out-of-stock SKUs"},
	}
}

func changePills(counts models.ChangeCounts) []models.Pill {
	pills := make([]models.Pill, 0, len(models.ChangeTypeOrder))
	for _, t := range models.ChangeTypeOrder {
		pills = append(pills, models.Pill{Value: counts.For(t), Label: format.LabelForChangeType(t)})
	}

	return pills
}

func bucketPills(buckets map[string]int, sym string) []models.Pill {
	pills := make([]models.Pill, 0, len(models.PriceBuckets))
	for _, b := range models.PriceBuckets {
		pills = append(pills, models.Pill{Value: buckets[b], Label: format.BucketLabel(b, sym)})
	}

	return pills
}

func changesByCategory(changes []models.Change, sym string) models.ChangesByCategory {
	shown := truncate(changes, MaxCategoryChanges)
	out := models.ChangesByCategory{Total: len(changes), Shown: len(shown)}

	groups := grouping.GroupBy(shown, func(c models.Change) string { return c.Category })
	for _, cat := range groups.SortedKeys() {
		items := groups.Get(cat)
		sec := models.ChangeSection{Title: cat, Count: len(items), Rows: make([]models.ChangeRow, 0, len(items))}
		for _, ch := range items {
			row := changeRow(ch)
			row.Tag = classifier.Tag(ch)
			row.Extra = classifier.CurrentPriceNote(ch, sym)
			sec.Rows = append(sec.Rows, row)
		}
		out.Sections = append(out.Sections, sec)
	}

	if len(out.Sections) == 0 {
		out.Empty = emptyChangesByCategory
	}

	return out
}

func changesByType(changes []models.Change, sym string) models.ChangesByType {
	out := models.ChangesByType{
		Header: fmt.Sprintf("Changed SKUs · %d total", len(changes)),
		Total:  len(changes),
	}

	groups := grouping.GroupBy(changes, func(c models.Change) string { return string(c.Type) })
	for _, t := range models.ChangeTypeOrder {
		items := groups.Get(string(t))
		if len(items) == 0 {
			continue
		}

		sec := models.ChangeSection{
			Title: format.LabelForChangeType(t),
			Count: len(items),
			Rows:  make([]models.ChangeRow, 0, len(items)),
		}
		for _, ch := range items {
			c := classifier.Classify(ch, sym)
			row := changeRow(ch)
			row.Tag, row.Extra = c.Label, c.Extra
			sec.Rows = append(sec.Rows, row)
		}
		out.Sections = append(out.Sections, sec)
	}

	if len(changes) == 0 {
		out.Empty = emptyChangesByType
	}

	return out
}

func changeRow(ch models.Change) models.ChangeRow {
	category := ch.Category
	if category == "" {
		category = grouping.FallbackKey
	}

	return models.ChangeRow{
		Key:      ch.Key,
		Type:     ch.Type,
		Title:    ch.Title,
		URL:      orFallbackURL(ch.URL),
		Category: category,
		Variant:  ch.VariantLabel,
	}
}

func productListing(site models.Site, changeIndex map[string]models.Change) models.ProductListing {
	out := models.ProductListing{
		Header: fmt.Sprintf("Product details · total SKUs: %d", site.ProductTotal),
		Total:  site.ProductTotal,
	}

	byCategory := withFallbackCategory(site.ProductsByCategory)
	for _, cat := range grouping.SortedKeys(byCategory) {
		items := byCategory[cat]

		visible := truncate(items, MaxProductsPerCategory)
		sec := models.ProductSection{Category: cat, Count: len(items), Rows: make([]models.ProductRow, 0, len(visible))}
		for _, p := range visible {
			row := productRow(p, site.CurrencySymbol)
			if ch, ok := changeIndex[p.Key]; ok && p.Key != "" {
				row.Annotation = classifier.Annotate(ch, site.CurrencySymbol)
			}
			sec.Rows = append(sec.Rows, row)
		}
		out.Sections = append(out.Sections, sec)
	}

	if len(out.Sections) == 0 {
		out.Empty = emptyProducts
	}

	return out
}

// withFallbackCategory folds uncategorized products into the fallback category,
// after any products already listed there. The input map is not modified.
func withFallbackCategory(byCategory map[string][]models.Product) map[string][]models.Product {
	loose, ok := byCategory[""]
	if !ok {
		return byCategory
	}

	out := make(map[string][]models.Product, len(byCategory))
	for cat, items := range byCategory {
		if cat != "" {
			out[cat] = items
		}
	}

	merged := make([]models.Product, 0, len(out[grouping.FallbackKey])+len(loose))
	merged = append(merged, out[grouping.FallbackKey]...)
	out[grouping.FallbackKey] = append(merged, loose...)

	return out
}

func bestsellerListing(items []models.Product, sym string) models.BestsellerListing {
	out := models.BestsellerListing{
		Header: fmt.Sprintf("Bestsellers · %d", len(items)),
		Total:  len(items),
	}

	for _, p := range truncate(items, MaxBestsellers) {
		out.Rows = append(out.Rows, productRow(p, sym))
	}

	if len(out.Rows) == 0 {
		out.Empty = emptyBestsellers
	}

	return out
}

func productRow(p models.Product, sym string) models.ProductRow {
	row := models.ProductRow{
		Key:     p.Key,
		Title:   p.Title,
		URL:     orFallbackURL(p.URL),
		Variant: p.VariantLabel,
		Price:   format.FormatPriceRange(sym, p.Price()),
		InStock: p.InStock(),
	}

	if row.InStock {
		row.Stock, row.StockTone = stockIn, models.ToneOK
	} else {
		row.Stock, row.StockTone = stockOut, models.ToneErr
	}

	return row
}

func orFallbackURL(u string) string {
	if u == "" {
		return fallbackURL
	}

	return u
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}

	return items
}
