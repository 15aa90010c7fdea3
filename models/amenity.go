package models

type AmenityCategory string

const (
	CategoryComfort        AmenityCategory = "comfort"
	CategorySecurity       AmenityCategory = "security"
	CategoryConnectivity   AmenityCategory = "connectivity"
	CategoryUtilities      AmenityCategory = "utilities"
	CategoryRecreation     AmenityCategory = "recreation"
	CategoryTransportation AmenityCategory = "transportation"
	CategoryOther          AmenityCategory = "other"
)

// AmenityCategories lists every valid category, for input validation.
var AmenityCategories = []AmenityCategory{
	CategoryComfort,
	CategorySecurity,
	CategoryConnectivity,
	CategoryUtilities,
	CategoryRecreation,
	CategoryTransportation,
	CategoryOther,
}

func (c AmenityCategory) Valid() bool {
	for _, known := range AmenityCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Amenity is a catalog entry. Icon is a symbolic icon name rendered by the
// front end. The catalog is not referenced by property characteristic tags;
// those stay free text.
type Amenity struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	Category  AmenityCategory `json:"category"`
	IsActive  bool            `json:"isActive"`
	CreatedAt string          `json:"createdAt"`
}

type AmenityInput struct {
	Name     string          `json:"name" validate:"required"`
	Icon     string          `json:"icon" validate:"required"`
	Category AmenityCategory `json:"category" validate:"required"`
	IsActive bool            `json:"isActive"`
}

type AmenityPatch struct {
	Name     *string          `json:"name,omitempty"`
	Icon     *string          `json:"icon,omitempty"`
	Category *AmenityCategory `json:"category,omitempty"`
	IsActive *bool            `json:"isActive,omitempty"`
}
