package models

// ChangeType is the kind of delta detected for a product key.
type ChangeType string

const (
	ChangeNew     ChangeType = "NEW"
	ChangePrice   ChangeType = "PRICE"
	ChangeRemoved ChangeType = "REMOVED"
	ChangeOOS     ChangeType = "OOS"
	ChangeRestock ChangeType = "RESTOCK"
)

// ChangeTypeOrder is the display order of change types. It is a contract,
// callers must not rely on map or insertion order instead.
var ChangeTypeOrder = []ChangeType{ //nolint:gochecknoglobals // fixed display contract
	ChangeNew,
	ChangePrice,
	ChangeRemoved,
	ChangeOOS,
	ChangeRestock,
}

// Change - one detected delta between two snapshots of a site.
type Change struct {
	Key             string     `json:"key"`
	Type            ChangeType `json:"type"`
	Title           string     `json:"title"`
	VariantLabel    string     `json:"variant_label"`
	Category        string     `json:"category"`
	URL             string     `json:"url"`
	OldPrice        PriceRange `json:"old_price"`
	NewPrice        PriceRange `json:"new_price"`
	AvailableBefore *bool      `json:"available_before"`
	AvailableNow    *bool      `json:"available_now"`
}

// ChangeCounts - totals per change type.
type ChangeCounts struct {
	New     int `json:"new"`
	Price   int `json:"price"`
	Removed int `json:"removed"`
	OOS     int `json:"oos"`
	Restock int `json:"restock"`
}

// For returns the counter of the given type, zero for unknown types.
func (c ChangeCounts) For(t ChangeType) int {
	switch t {
	case ChangeNew:
		return c.New
	case ChangePrice:
		return c.Price
	case ChangeRemoved:
		return c.Removed
	case ChangeOOS:
		return c.OOS
	case ChangeRestock:
		return c.Restock
	default:
		return 0
	}
}
