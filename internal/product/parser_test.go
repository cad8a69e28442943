package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/order-print-pipeline/internal/config"
)

func todaytrendBook(t *testing.T) *config.PriceBook {
	t.Helper()
	book, ok := config.BuiltinPriceBooks()["todaytrend"]
	require.True(t, ok)
	return book
}

func TestParseItemsQuantityAndDefault(t *testing.T) {
	items, err := ParseItems("SB101|Red*3, SB102|Blue", todaytrendBook(t))

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, LineItem{Code: "SB101", Variant: "Red", Quantity: 3, UnitPrice: 3000, LineTotal: 9000}, items[0])
	assert.Equal(t, LineItem{Code: "SB102", Variant: "Blue", Quantity: 1, UnitPrice: 3000, LineTotal: 3000}, items[1])
}

func TestParseItemsEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		items, err := ParseItems(raw, todaytrendBook(t))
		require.NoError(t, err)
		assert.Empty(t, items)
	}
}

func TestParseItemsMissingDelimiterYieldsEmptyVariant(t *testing.T) {
	items, err := ParseItems("SB101", todaytrendBook(t))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SB101", items[0].Code)
	assert.Equal(t, "", items[0].Variant)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestParseItemsUnknownCodeFallsBackToDefaultPrice(t *testing.T) {
	items, err := ParseItems("ZZ999|Thing*2", todaytrendBook(t))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2000, items[0].UnitPrice)
	assert.Equal(t, 4000, items[0].LineTotal)
}

func TestParseItemsStripsQuantitySuffixFromVariant(t *testing.T) {
	items, err := ParseItems("SB103|Navy Blue*12", todaytrendBook(t))

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Navy Blue", items[0].Variant)
	assert.Equal(t, 12, items[0].Quantity)
}
