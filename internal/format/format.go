// Package format maps raw prices and change codes to display strings.
package format

import (
	"github.com/Houeta/shelf-watch/internal/models"
)

// Delta is the direction of a price change.
type Delta string

const (
	DeltaRise      Delta = "RISE"
	DeltaFall      Delta = "FALL"
	DeltaUnchanged Delta = "UNCHANGED"
	DeltaUnknown   Delta = "UNKNOWN"
)

const rangeDash = "–"

var changeTypeLabels = map[models.ChangeType]string{ //nolint:gochecknoglobals // fixed label set
	models.ChangeNew:     "new listing",
	models.ChangePrice:   "price change",
	models.ChangeRemoved: "removed",
	models.ChangeOOS:     "out of stock",
	models.ChangeRestock: "restocked",
}

var deltaWords = map[Delta]string{ //nolint:gochecknoglobals // fixed label set
	DeltaRise:      "↑ price up",
	DeltaFall:      "↓ price down",
	DeltaUnchanged: "price unchanged",
}

// LabelForChangeType returns the display label of a change type. Unknown types
// are echoed back unchanged.
func LabelForChangeType(t models.ChangeType) string {
	if label, ok := changeTypeLabels[t]; ok {
		return label
	}

	return string(t)
}

// FormatPriceRange renders a price range with the currency symbol in front of
// every value. An absent range renders as the empty string.
func FormatPriceRange(symbol string, r models.PriceRange) string {
	switch {
	case r.IsAbsent():
		return ""
	case !r.Max.Valid:
		return symbol + r.Min.Decimal.String()
	case !r.Min.Valid:
		return symbol + r.Max.Decimal.String()
	case r.Min.Decimal.Equal(r.Max.Decimal):
		return symbol + r.Min.Decimal.String()
	default:
		return symbol + r.Min.Decimal.String() + rangeDash + symbol + r.Max.Decimal.String()
	}
}

// ClassifyPriceDelta compares the minimum bounds of two ranges.
func ClassifyPriceDelta(oldRange, newRange models.PriceRange) Delta {
	if !oldRange.Min.Valid || !newRange.Min.Valid {
		return DeltaUnknown
	}

	switch newRange.Min.Decimal.Cmp(oldRange.Min.Decimal) {
	case 1:
		return DeltaRise
	case -1:
		return DeltaFall
	default:
		return DeltaUnchanged
	}
}

// DeltaWord is the short display text of a delta, empty for DeltaUnknown.
func DeltaWord(d Delta) string {
	return deltaWords[d]
}

// BucketLabel renders a price bucket key such as "50-100" as "50–100€".
func BucketLabel(bucket, symbol string) string {
	out := make([]rune, 0, len(bucket)+len(symbol))
	for _, r := range bucket {
		if r == '-' {
			out = append(out, []rune(rangeDash)...)
			continue
		}
		out = append(out, r)
	}

	return string(out) + symbol
}
