// Package classifier decides how a change combines with price and product data.
package classifier

import (
	"github.com/Houeta/shelf-watch/internal/format"
	"github.com/Houeta/shelf-watch/internal/models"
)

const priceArrow = " → "

// Classification is the resolved display of one change.
type Classification struct {
	Label string
	Extra string
}

// Classify resolves a change into its label and extra text:
//
//	NEW      new listing / current price
//	PRICE    delta word  / old price → new price
//	REMOVED, OOS, RESTOCK and unknown types: type label, no extra text
func Classify(ch models.Change, symbol string) Classification {
	switch ch.Type {
	case models.ChangeNew:
		return Classification{
			Label: format.LabelForChangeType(ch.Type),
			Extra: CurrentPriceNote(ch, symbol),
		}
	case models.ChangePrice:
		return Classification{
			Label: PriceLabel(ch),
			Extra: format.FormatPriceRange(symbol, ch.OldPrice) + priceArrow + format.FormatPriceRange(symbol, ch.NewPrice),
		}
	default:
		return Classification{Label: format.LabelForChangeType(ch.Type)}
	}
}

// PriceLabel returns the delta word of a change, falling back to the type
// label when the direction cannot be decided.
func PriceLabel(ch models.Change) string {
	if word := format.DeltaWord(format.ClassifyPriceDelta(ch.OldPrice, ch.NewPrice)); word != "" {
		return word
	}

	return format.LabelForChangeType(ch.Type)
}

// Tag is the short tag used in category listings: the delta word for PRICE,
// the type label otherwise.
func Tag(ch models.Change) string {
	if ch.Type == models.ChangePrice {
		return PriceLabel(ch)
	}

	return format.LabelForChangeType(ch.Type)
}

// CurrentPriceNote shows the new price for NEW and PRICE changes, empty otherwise.
func CurrentPriceNote(ch models.Change, symbol string) string {
	if !ShowsPrice(ch.Type) {
		return ""
	}

	p := format.FormatPriceRange(symbol, ch.NewPrice)
	if p == "" {
		return ""
	}

	return "current price: " + p
}

// ShowsPrice reports whether a change type carries a visible price annotation.
func ShowsPrice(t models.ChangeType) bool {
	return t == models.ChangeNew || t == models.ChangePrice
}

// Annotate builds the annotation of a product row from its matching change.
// Only NEW and PRICE changes annotate a product; others return nil.
func Annotate(ch models.Change, symbol string) *models.Annotation {
	switch ch.Type {
	case models.ChangeNew:
		a := &models.Annotation{Type: ch.Type, Tag: format.LabelForChangeType(ch.Type)}
		if p := format.FormatPriceRange(symbol, ch.NewPrice); p != "" {
			a.PriceNote = "listed at " + p
		}
		return a
	case models.ChangePrice:
		a := &models.Annotation{Type: ch.Type, Tag: PriceLabel(ch)}
		if p := format.FormatPriceRange(symbol, ch.OldPrice); p != "" {
			a.PriceNote = "was " + p
		}
		return a
	default:
		return nil
	}
}
