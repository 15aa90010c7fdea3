package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kxxnxr13/web-inmobiliaria/models"
)

type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortAreaLarge Sort = "area-large"
	SortAreaSmall Sort = "area-small"
)

// Filter is a set of independently toggleable criteria. The zero value of a
// field means "no constraint"; active criteria combine with logical AND.
// Bracket fields take the fixed labels the site exposes; an unrecognized
// label matches everything.
type Filter struct {
	Term         string
	Type         models.ListingType
	PropertyType string
	PriceRange   string // "0-100k", "100k-300k", "300k-500k", "500k+"
	Bedrooms     string // exact count, or "4+"
	Bathrooms    string // exact count, or "3+"
	AreaRange    string // "0-100", "100-150", "150-200", "200+"
	Sort         Sort
}

// Apply filters and sorts a snapshot of the collection without mutating it.
// The sort is stable: equal records keep their pre-sort relative order, so
// repeated renders with unchanged criteria stay visually identical.
func Apply(properties []models.Property, f Filter) []models.Property {
	filtered := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if f.match(p) {
			filtered = append(filtered, p)
		}
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortAreaLarge:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Area > filtered[j].Area
		})
	case SortAreaSmall:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Area < filtered[j].Area
		})
	default: // newest first; the date format makes string order chronological
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt > filtered[j].CreatedAt
		})
	}

	return filtered
}

func (f Filter) match(p models.Property) bool {
	if term := strings.TrimSpace(strings.ToLower(f.Term)); term != "" {
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(strings.Join(p.Characteristics, " ")), term) {
			return false
		}
	}

	if f.Type != "" && p.Type != f.Type {
		return false
	}

	if f.PropertyType != "" {
		if !strings.Contains(strings.ToLower(p.PropertyType), strings.ToLower(f.PropertyType)) {
			return false
		}
	}

	if f.PriceRange != "" && !matchPriceRange(p.Price, f.PriceRange) {
		return false
	}

	if f.Bedrooms != "" && !matchCount(p.Bedrooms, f.Bedrooms, "4+", 4) {
		return false
	}

	if f.Bathrooms != "" && !matchCount(p.Bathrooms, f.Bathrooms, "3+", 3) {
		return false
	}

	if f.AreaRange != "" && !matchAreaRange(p.Area, f.AreaRange) {
		return false
	}

	return true
}

// Brackets are exclusive on the lower bound and inclusive on the upper;
// labels ending in "+" have no upper bound.
func matchPriceRange(price float64, label string) bool {
	switch label {
	case "0-100k":
		return price >= 0 && price <= 100000
	case "100k-300k":
		return price > 100000 && price <= 300000
	case "300k-500k":
		return price > 300000 && price <= 500000
	case "500k+":
		return price > 500000
	default:
		return true
	}
}

func matchAreaRange(area float64, label string) bool {
	switch label {
	case "0-100":
		return area >= 0 && area <= 100
	case "100-150":
		return area > 100 && area <= 150
	case "150-200":
		return area > 150 && area <= 200
	case "200+":
		return area > 200
	default:
		return true
	}
}

func matchCount(have int, label, openLabel string, openMin int) bool {
	if label == openLabel {
		return have >= openMin
	}
	want, err := strconv.Atoi(label)
	if err != nil {
		return true
	}
	return have == want
}
