package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFromLocation(t *testing.T) {
	f := ParseFromLocation("?location=Bishan&minPrice=500000&maxPrice=abc&bedrooms=&amenities=gym,pool,gym&sortBy=price_asc&page=2&utm_source=ad")

	assert.Equal(t, "Bishan", f.Location)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 500000.0, *f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.Bedrooms)
	assert.Equal(t, []string{"gym", "pool"}, f.Amenities)
	assert.Equal(t, SortPriceAsc, f.SortBy)
	assert.Equal(t, 2, f.CurrentPage())
	assert.Equal(t, map[string]string{"utm_source": "ad"}, f.Extra)
}

func TestParseFromLocation_RejectsBadNumbers(t *testing.T) {
	f := ParseFromLocation("minPrice=NaN&maxPrice=-5&sizeMin=Inf&page=-1&sortBy=cheapest")

	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.SizeMin)
	assert.Nil(t, f.Page)
	assert.Equal(t, SortKey(""), f.SortBy)
}

func TestParseFromLocation_Aliases(t *testing.T) {
	f := ParseFromLocation("priceMin=100&priceMax=900")
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 100.0, *f.MinPrice)
	assert.Equal(t, 900.0, *f.MaxPrice)

	canonicalWins := ParseFromLocation("priceMin=100&minPrice=200")
	require.NotNil(t, canonicalWins.MinPrice)
	assert.Equal(t, 200.0, *canonicalWins.MinPrice)
}

func TestSerialize_RoundTrip(t *testing.T) {
	raw := "amenities=gym%2Cpool&bedrooms=3&location=Bishan&page=1&sortBy=date_desc"

	once := Serialize(ParseFromLocation(raw))
	twice := Serialize(ParseFromLocation(once))

	assert.Equal(t, raw, once)
	assert.Equal(t, once, twice)
	assert.Equal(t, once, Normalize("?sortBy=date_desc&location=Bishan&bedrooms=3&page=1&amenities=gym,pool&keywords="))
}

func TestSerialize_RoundTripCanonicalisesInput(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"priceMin=100&priceMax=900", "maxPrice=900&minPrice=100"},
		{"priceMin=100&minPrice=200", "minPrice=200"},
		{"minPrice=1.50&sizeMax=080", "minPrice=1.5&sizeMax=80"},
		{"amenities=gym, pool,gym", "amenities=gym%2Cpool"},
		{"page=02&sortBy=price_desc&keywords=+sea+view+", "keywords=sea+view&page=2&sortBy=price_desc"},
		{"maxPrice=abc&sortBy=cheapest&utm_source=ad", "utm_source=ad"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.raw))
			assert.Equal(t, Normalize(tc.raw), Serialize(ParseFromLocation(tc.raw)))
		})
	}
}

func TestApplyFilterChange_ResetsPage(t *testing.T) {
	current := ParseFromLocation("location=Bishan&page=4&bedrooms=2")

	next := ApplyFilterChange(current, FilterPatch{"bedrooms": "3", "location": "", "priceMin": "1000"})

	assert.Equal(t, 0, next.CurrentPage())
	require.NotNil(t, next.Page)
	assert.Empty(t, next.Location)
	require.NotNil(t, next.Bedrooms)
	assert.Equal(t, 3.0, *next.Bedrooms)
	require.NotNil(t, next.MinPrice)
	assert.Equal(t, 1000.0, *next.MinPrice)
	assert.Equal(t, "bedrooms=3&minPrice=1000&page=0", Serialize(next))

	// исходный фильтр не меняется
	assert.Equal(t, 4, current.CurrentPage())
	assert.Equal(t, "Bishan", current.Location)
}

func TestWithPage(t *testing.T) {
	f := ParseFromLocation("location=Bishan")
	assert.Equal(t, 3, f.WithPage(3).CurrentPage())
	assert.Equal(t, 0, f.WithPage(-2).CurrentPage())
	assert.Nil(t, f.Page)
}

func TestSearchSummary(t *testing.T) {
	assert.Equal(t, "Showing all properties", SearchSummary(PropertyQueryFilter{}))
	assert.Equal(t, `Showing results for Location: "Bishan", For: "rent"`,
		SearchSummary(PropertyQueryFilter{Location: "Bishan", ListingType: "rent"}))
}
