package storage

import "errors"

// Keys used by the stores. Each collection lives as one JSON array under one
// key; the schema-version keys drive the one-shot migration at store init.
const (
	KeyProperties        = "properties_data"
	KeyPropertiesVersion = "properties_schema_version"
	KeyAmenities         = "amenities_data"
	KeyAmenitiesVersion  = "amenities_schema_version"
	KeyAdmins            = "admins_data"
	KeyAuthUser          = "auth_user"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// KeyValue is a synchronous string-keyed, string-valued store.
type KeyValue interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
