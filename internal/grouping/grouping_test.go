package grouping_test

import (
	"testing"

	"github.com/Houeta/shelf-watch/internal/grouping"
	"github.com/Houeta/shelf-watch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byCategory(c models.Change) string { return c.Category }

func byKey(c models.Change) string { return c.Key }

func TestGroupBy(t *testing.T) {
	changes := []models.Change{
		{Key: "1", Category: "Shoes"},
		{Key: "2", Category: "Bags"},
		{Key: "3", Category: ""},
		{Key: "4", Category: "Shoes"},
		{Key: "5", Category: "Bags"},
	}

	groups := grouping.GroupBy(changes, byCategory)

	assert.Equal(t, []string{"Shoes", "Bags", "Other"}, groups.Keys())
	assert.Equal(t, []string{"Bags", "Other", "Shoes"}, groups.SortedKeys())
	assert.Equal(t, 3, groups.Len())
	assert.Equal(t, []models.Change{changes[0], changes[3]}, groups.Get("Shoes"))
	assert.Equal(t, []models.Change{changes[2]}, groups.Get(grouping.FallbackKey))
	assert.Nil(t, groups.Get("Hats"))
}

func TestGroupBy_FlattenPreservesOrderPerGroup(t *testing.T) {
	changes := []models.Change{
		{Key: "a", Type: models.ChangePrice},
		{Key: "b", Type: models.ChangeNew},
		{Key: "c", Type: models.ChangePrice},
		{Key: "d", Type: "MYSTERY"},
		{Key: "e", Type: models.ChangeNew},
	}

	groups := grouping.GroupBy(changes, func(c models.Change) string { return string(c.Type) })

	var flat []string
	for _, k := range groups.Keys() {
		for _, c := range groups.Get(k) {
			flat = append(flat, c.Key)
		}
	}

	assert.Equal(t, []string{"a", "c", "b", "e", "d"}, flat)
	assert.Len(t, flat, len(changes))
}

func TestGroupBy_Deterministic(t *testing.T) {
	changes := []models.Change{{Key: "1", Category: "B"}, {Key: "2", Category: "A"}}

	first := grouping.GroupBy(changes, byCategory)
	second := grouping.GroupBy(changes, byCategory)

	assert.Equal(t, first, second)
}

func TestGroupBy_Empty(t *testing.T) {
	groups := grouping.GroupBy[models.Change](nil, byCategory)

	assert.Zero(t, groups.Len())
	assert.Empty(t, groups.Keys())
}

func TestIndexBy_LastWriteWins(t *testing.T) {
	changes := []models.Change{
		{Key: "k1", Type: models.ChangeNew},
		{Key: "k2", Type: models.ChangeOOS},
		{Key: "k1", Type: models.ChangePrice},
		{Key: "", Type: models.ChangeRemoved},
	}

	idx := grouping.IndexBy(changes, byKey)

	require.Len(t, idx, 2)
	assert.Equal(t, models.ChangePrice, idx["k1"].Type)
	assert.Equal(t, models.ChangeOOS, idx["k2"].Type)
	_, found := idx[""]
	assert.False(t, found)
}

func TestSortedKeys(t *testing.T) {
	m := map[string][]models.Product{"b": nil, "a": nil, "c": nil}

	assert.Equal(t, []string{"a", "b", "c"}, grouping.SortedKeys(m))
}
