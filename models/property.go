package models

import "encoding/json"

type ListingType string

const (
	ListingSale   ListingType = "sale"
	ListingRental ListingType = "rental"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusRented    Status = "rented"
)

// DateFormat is the layout used for createdAt/lastUpdated fields. Lexicographic
// comparison of two values in this format matches chronological order.
const DateFormat = "2006-01-02"

const sharedOwnerID = "general"

// Owner identifies which admin manages a property. The zero value is the
// shared owner: manageable by any admin. On the wire it serializes as the
// admin id, or the literal "general" when shared.
type Owner struct {
	adminID string
}

func SharedOwner() Owner {
	return Owner{}
}

func OwnedBy(adminID string) Owner {
	if adminID == "" || adminID == sharedOwnerID {
		return Owner{}
	}
	return Owner{adminID: adminID}
}

func (o Owner) IsShared() bool {
	return o.adminID == ""
}

// AdminID returns the owning admin id. ok is false for the shared owner.
func (o Owner) AdminID() (id string, ok bool) {
	return o.adminID, o.adminID != ""
}

// ManageableBy reports whether the given admin may manage a property with
// this owner. Shared properties are manageable by every admin.
func (o Owner) ManageableBy(adminID string) bool {
	return o.IsShared() || o.adminID == adminID
}

func (o Owner) String() string {
	if o.IsShared() {
		return sharedOwnerID
	}
	return o.adminID
}

func (o Owner) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Owner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = OwnedBy(s)
	return nil
}

// Property is one real-estate listing. Price is an absolute amount whose
// meaning depends on Type (sale price vs. monthly rent); Area is in square
// meters. Characteristics and Services are free-text tag lists maintained
// independently of the amenity catalog; the two may drift apart and that is
// accepted, not something to reconcile here.
type Property struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Price           float64     `json:"price"`
	Location        string      `json:"location"`
	Bedrooms        int         `json:"bedrooms"`
	Bathrooms       int         `json:"bathrooms"`
	Area            float64     `json:"area"`
	Parking         int         `json:"parking,omitempty"`
	YearBuilt       int         `json:"yearBuilt,omitempty"`
	Type            ListingType `json:"type"`
	Status          Status      `json:"status"`
	ImageURL        string      `json:"imageUrl"`
	CreatedAt       string      `json:"createdAt"`
	LastUpdated     string      `json:"lastUpdated"`
	Owner           Owner       `json:"adminId"`
	Featured        bool        `json:"featured,omitempty"`
	Characteristics []string    `json:"characteristics"`
	Services        []string    `json:"services"`
	PricePerArea    int         `json:"pricePerArea"`
	Condition       string      `json:"condition,omitempty"`
	PropertyType    string      `json:"propertyType,omitempty"`
}

// PropertyInput is the creation payload. Id, createdAt, lastUpdated and
// pricePerArea are assigned by the store, never by the caller.
type PropertyInput struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Price           float64     `json:"price"`
	Location        string      `json:"location"`
	Bedrooms        int         `json:"bedrooms"`
	Bathrooms       int         `json:"bathrooms"`
	Area            float64     `json:"area"`
	Parking         int         `json:"parking,omitempty"`
	YearBuilt       int         `json:"yearBuilt,omitempty"`
	Type            ListingType `json:"type"`
	Status          Status      `json:"status"`
	ImageURL        string      `json:"imageUrl"`
	Owner           Owner       `json:"adminId"`
	Featured        bool        `json:"featured,omitempty"`
	Characteristics []string    `json:"characteristics"`
	Services        []string    `json:"services"`
	Condition       string      `json:"condition,omitempty"`
	PropertyType    string      `json:"propertyType,omitempty"`
}

// PropertyPatch is a partial update. Nil fields are left untouched. The
// immutable fields (id, createdAt) are deliberately not representable here.
type PropertyPatch struct {
	Title           *string      `json:"title,omitempty"`
	Description     *string      `json:"description,omitempty"`
	Price           *float64     `json:"price,omitempty"`
	Location        *string      `json:"location,omitempty"`
	Bedrooms        *int         `json:"bedrooms,omitempty"`
	Bathrooms       *int         `json:"bathrooms,omitempty"`
	Area            *float64     `json:"area,omitempty"`
	Parking         *int         `json:"parking,omitempty"`
	YearBuilt       *int         `json:"yearBuilt,omitempty"`
	Type            *ListingType `json:"type,omitempty"`
	Status          *Status      `json:"status,omitempty"`
	ImageURL        *string      `json:"imageUrl,omitempty"`
	Owner           *Owner       `json:"adminId,omitempty"`
	Featured        *bool        `json:"featured,omitempty"`
	Characteristics *[]string    `json:"characteristics,omitempty"`
	Services        *[]string    `json:"services,omitempty"`
	Condition       *string      `json:"condition,omitempty"`
	PropertyType    *string      `json:"propertyType,omitempty"`
}
