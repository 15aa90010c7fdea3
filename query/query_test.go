package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxxnxr13/web-inmobiliaria/models"
)

func prop(id string, mutate func(*models.Property)) models.Property {
	p := models.Property{
		ID:        id,
		Title:     "Listing " + id,
		Status:    models.StatusAvailable,
		Type:      models.ListingSale,
		CreatedAt: "2024-01-15",
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func ids(properties []models.Property) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.ID
	}
	return out
}

func TestPriceBracketBounds(t *testing.T) {
	prices := []float64{50000, 150000, 300000, 500000}
	var input []models.Property
	for i, price := range prices {
		price := price
		input = append(input, prop(fmt.Sprint(i), func(p *models.Property) { p.Price = price }))
	}

	got := Apply(input, Filter{PriceRange: "100k-300k"})
	var matched []float64
	for _, p := range got {
		matched = append(matched, p.Price)
	}
	// Exclusive lower bound, inclusive upper bound.
	assert.Equal(t, []float64{150000, 300000}, matched)

	got = Apply(input, Filter{PriceRange: "500k+"})
	assert.Empty(t, got, "500000 is on the inclusive upper edge of the bracket below")
}

func TestBedroomsOpenBucket(t *testing.T) {
	var input []models.Property
	for _, n := range []int{2, 3, 4, 5} {
		n := n
		input = append(input, prop(fmt.Sprint(n), func(p *models.Property) { p.Bedrooms = n }))
	}

	got := Apply(input, Filter{Bedrooms: "4+"})
	assert.Equal(t, []string{"4", "5"}, ids(got))

	got = Apply(input, Filter{Bedrooms: "3"})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestBathroomsOpenBucket(t *testing.T) {
	var input []models.Property
	for _, n := range []int{1, 2, 3, 4} {
		n := n
		input = append(input, prop(fmt.Sprint(n), func(p *models.Property) { p.Bathrooms = n }))
	}

	got := Apply(input, Filter{Bathrooms: "3+"})
	assert.Equal(t, []string{"3", "4"}, ids(got))
}

func TestAreaBrackets(t *testing.T) {
	var input []models.Property
	for _, a := range []float64{80, 100, 120, 150, 180, 250} {
		a := a
		input = append(input, prop(fmt.Sprint(a), func(p *models.Property) { p.Area = a }))
	}

	assert.Equal(t, []string{"80", "100"}, ids(Apply(input, Filter{AreaRange: "0-100"})))
	assert.Equal(t, []string{"120", "150"}, ids(Apply(input, Filter{AreaRange: "100-150"})))
	assert.Equal(t, []string{"180"}, ids(Apply(input, Filter{AreaRange: "150-200"})))
	assert.Equal(t, []string{"250"}, ids(Apply(input, Filter{AreaRange: "200+"})))
}

func TestCriteriaCombineWithAND(t *testing.T) {
	input := []models.Property{
		prop("a", func(p *models.Property) { p.Type = models.ListingRental; p.Bedrooms = 2 }),
		prop("b", func(p *models.Property) { p.Type = models.ListingRental; p.Bedrooms = 3 }),
		prop("c", func(p *models.Property) { p.Type = models.ListingSale; p.Bedrooms = 2 }),
		prop("d", func(p *models.Property) { p.Type = models.ListingSale; p.Bedrooms = 3 }),
	}

	combined := Apply(input, Filter{Type: models.ListingRental, Bedrooms: "2"})

	byType := map[string]bool{}
	for _, p := range Apply(input, Filter{Type: models.ListingRental}) {
		byType[p.ID] = true
	}
	var intersection []string
	for _, p := range Apply(input, Filter{Bedrooms: "2"}) {
		if byType[p.ID] {
			intersection = append(intersection, p.ID)
		}
	}

	assert.Equal(t, intersection, ids(combined))
	assert.Equal(t, []string{"a"}, ids(combined))
}

func TestTermSearchesAllTextFields(t *testing.T) {
	input := []models.Property{
		prop("title", func(p *models.Property) { p.Title = "Breathtaking OCEAN view" }),
		prop("loc", func(p *models.Property) { p.Location = "Ocean Drive, City" }),
		prop("desc", func(p *models.Property) { p.Description = "steps from the ocean" }),
		prop("tags", func(p *models.Property) { p.Characteristics = []string{"Ocean view", "Gym"} }),
		prop("none", func(p *models.Property) { p.Title = "Mountain cabin" }),
	}

	got := Apply(input, Filter{Term: "ocean"})
	assert.ElementsMatch(t, []string{"title", "loc", "desc", "tags"}, ids(got))
}

func TestBlankTermMeansNoConstraint(t *testing.T) {
	input := []models.Property{prop("a", nil), prop("b", nil)}

	assert.Len(t, Apply(input, Filter{Term: "   "}), 2)
	assert.Len(t, Apply(input, Filter{Term: ""}), 2)
}

func TestPropertyTypeSubstringMatch(t *testing.T) {
	input := []models.Property{
		prop("eco", func(p *models.Property) { p.PropertyType = "Eco House" }),
		prop("house", func(p *models.Property) { p.PropertyType = "House" }),
		prop("loft", func(p *models.Property) { p.PropertyType = "Loft" }),
	}

	got := Apply(input, Filter{PropertyType: "house"})
	assert.ElementsMatch(t, []string{"eco", "house"}, ids(got))
}

func TestNewestSortIsStable(t *testing.T) {
	input := []models.Property{
		prop("first", func(p *models.Property) { p.CreatedAt = "2024-01-10" }),
		prop("second", func(p *models.Property) { p.CreatedAt = "2024-01-10" }),
		prop("newer", func(p *models.Property) { p.CreatedAt = "2024-01-20" }),
		prop("third", func(p *models.Property) { p.CreatedAt = "2024-01-10" }),
	}

	got := Apply(input, Filter{Sort: SortNewest})
	assert.Equal(t, []string{"newer", "first", "second", "third"}, ids(got))
}

func TestSortVariants(t *testing.T) {
	input := []models.Property{
		prop("mid", func(p *models.Property) { p.Price = 200; p.Area = 100 }),
		prop("low", func(p *models.Property) { p.Price = 100; p.Area = 300 }),
		prop("high", func(p *models.Property) { p.Price = 300; p.Area = 200 }),
	}

	assert.Equal(t, []string{"low", "mid", "high"}, ids(Apply(input, Filter{Sort: SortPriceLow})))
	assert.Equal(t, []string{"high", "mid", "low"}, ids(Apply(input, Filter{Sort: SortPriceHigh})))
	assert.Equal(t, []string{"low", "high", "mid"}, ids(Apply(input, Filter{Sort: SortAreaLarge})))
	assert.Equal(t, []string{"mid", "high", "low"}, ids(Apply(input, Filter{Sort: SortAreaSmall})))
}

func TestPaginateThirteenAcrossThreePages(t *testing.T) {
	var input []models.Property
	for i := 0; i < 13; i++ {
		input = append(input, prop(fmt.Sprint(i), nil))
	}

	page := Paginate(input, 3, 6)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 13, page.Total)
	require.Len(t, page.Properties, 1)
	assert.Equal(t, "12", page.Properties[0].ID)
}

func TestPaginateCoversSequenceExactly(t *testing.T) {
	var input []models.Property
	for i := 0; i < 13; i++ {
		input = append(input, prop(fmt.Sprint(i), nil))
	}

	first := Paginate(input, 1, 6)
	var all []string
	for p := 1; p <= first.TotalPages; p++ {
		all = append(all, ids(Paginate(input, p, 6).Properties)...)
	}
	assert.Equal(t, ids(input), all)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	input := []models.Property{prop("a", nil), prop("b", nil)}

	page := Paginate(input, 0, 6)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Properties, 2)

	page = Paginate(input, 99, 6)
	assert.Empty(t, page.Properties)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(nil, 1, 6)
	assert.Zero(t, page.TotalPages)
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Properties)
	assert.Empty(t, page.Properties)
}
