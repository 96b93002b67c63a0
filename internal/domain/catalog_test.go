package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func testProducts() []Product {
	return []Product{
		{ID: "w001", Name: "Apex Steel", Brand: "Zenith", Category: CategoryMasculino, Price: 699.9, Tag: "Novo"},
		{ID: "w002", Name: "Luna Pearl", Brand: "Aurora", Category: CategoryFeminino, Price: 549.5, Tag: "Top"},
		{ID: "w007", Name: "Runner Fit", Brand: "Pulse", Category: CategoryEsportivo, Price: 299.0, Tag: "Top"},
		{ID: "w009", Name: "Ocean Blue", Brand: "Mariner", Category: CategoryEsportivo, Price: 379.0, Tag: "Verão"},
		{ID: "w017", Name: "Ivory Classic", Brand: "Royal", Category: CategoryClassico, Price: 799.0, Tag: "Luxo"},
		{ID: "w019", Name: "Blush Petite", Brand: "Fleur", Category: CategoryFeminino, Price: 309.0, Tag: "Leve"},
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterProducts_NoFiltersPassesEverything(t *testing.T) {
	products := testProducts()
	got := FilterProducts(products, ProductFilter{}, nil)
	assert.Equal(t, ids(products), ids(got))
}

func TestFilterProducts_Predicates(t *testing.T) {
	wishlist := map[string]struct{}{"w002": {}, "w009": {}}

	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{"category", ProductFilter{Category: CategoryEsportivo}, []string{"w007", "w009"}},
		{"query matches name", ProductFilter{Query: "  LUNA "}, []string{"w002"}},
		{"query matches brand", ProductFilter{Query: "royal"}, []string{"w017"}},
		{"query spans name and brand", ProductFilter{Query: "steel zenith"}, []string{"w001"}},
		{"favorites only", ProductFilter{FavoritesOnly: true}, []string{"w002", "w009"}},
		{"brand set", ProductFilter{Brands: map[string]struct{}{"Pulse": {}, "Fleur": {}}}, []string{"w007", "w019"}},
		{"min price", ProductFilter{MinPrice: floatPtr(700)}, []string{"w017"}},
		{"max price", ProductFilter{MaxPrice: floatPtr(309)}, []string{"w007", "w019"}},
		{"price range inclusive", ProductFilter{MinPrice: floatPtr(379), MaxPrice: floatPtr(549.5)}, []string{"w002", "w009"}},
		{"min rating", ProductFilter{MinRating: floatPtr(4.5)}, []string{"w001", "w002", "w007", "w019"}},
		{"tag", ProductFilter{Tag: "Top"}, []string{"w002", "w007"}},
		{"free shipping", ProductFilter{FreeShipping: true}, []string{"w001", "w002", "w009", "w017", "w019"}},
		{"combined", ProductFilter{Category: CategoryFeminino, Tag: "Top", FreeShipping: true}, []string{"w002"}},
		{"no match", ProductFilter{Query: "nothing like this"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(testProducts(), tt.filter, wishlist)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterProducts_Idempotent(t *testing.T) {
	filters := []ProductFilter{
		{Category: CategoryFeminino},
		{Query: "blue", MinRating: floatPtr(4)},
		{MinPrice: floatPtr(300), MaxPrice: floatPtr(600)},
		{FreeShipping: true, Tag: "Top"},
	}
	for _, f := range filters {
		once := FilterProducts(testProducts(), f, nil)
		twice := FilterProducts(once, f, nil)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestFilterProducts_FreeShippingSharesPricingThreshold(t *testing.T) {
	atThreshold := Product{ID: "x", Name: "X", Price: FreeShippingThreshold}
	below := Product{ID: "y", Name: "Y", Price: FreeShippingThreshold - 0.01}

	got := FilterProducts([]Product{atThreshold, below}, ProductFilter{FreeShipping: true}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)

	totals := CalcTotals([]CartLine{{ID: "x", Price: atThreshold.Price, Qty: 1}}, "")
	assert.Zero(t, totals.Shipping)
}

func TestSortProducts_PriceAscThenDescIsReversed(t *testing.T) {
	asc := SortProducts(testProducts(), SortPriceAsc)
	desc := SortProducts(testProducts(), SortPriceDesc)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
	assert.Equal(t, "w007", asc[0].ID)
	assert.Equal(t, "w017", desc[0].ID)
}

func TestSortProducts_Name(t *testing.T) {
	asc := SortProducts(testProducts(), SortNameAsc)
	assert.Equal(t, []string{"w001", "w019", "w017", "w002", "w009", "w007"}, ids(asc))

	desc := SortProducts(testProducts(), SortNameDesc)
	assert.Equal(t, []string{"w007", "w009", "w002", "w017", "w019", "w001"}, ids(desc))
}

func TestSortProducts_NameIsLocaleAware(t *testing.T) {
	products := []Product{
		{ID: "b", Name: "Zulu"},
		{ID: "a", Name: "Ébano"},
		{ID: "c", Name: "eclipse"},
	}
	got := SortProducts(products, SortNameAsc)
	assert.Equal(t, []string{"a", "c", "b"}, ids(got))
}

func TestSortProducts_StableForEqualPrices(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "A", Price: 100},
		{ID: "b", Name: "B", Price: 50},
		{ID: "c", Name: "C", Price: 100},
		{ID: "d", Name: "D", Price: 50},
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(SortProducts(products, SortPriceAsc)))
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(SortProducts(products, SortPriceDesc)))
}

func TestSortProducts_UnknownKeyKeepsOrderAndInputUntouched(t *testing.T) {
	products := testProducts()
	before := ids(products)

	assert.Equal(t, before, ids(SortProducts(products, "")))
	assert.Equal(t, before, ids(SortProducts(products, "rating-desc")))

	_ = SortProducts(products, SortPriceDesc)
	assert.Equal(t, before, ids(products))
}
