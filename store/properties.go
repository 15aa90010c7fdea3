package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/storage"
)

// propertiesSchemaVersion tags the persisted property blob. Bumping it makes
// every store discard previously persisted data once and reseed.
const propertiesSchemaVersion = "2"

// Properties holds the authoritative listing collection in memory and mirrors
// it to the key-value backend after every mutation. Lookups never touch the
// backend.
type Properties struct {
	mu      sync.RWMutex
	backend storage.KeyValue
	records []models.Property
	lastID  int64
}

func NewProperties(backend storage.KeyValue) *Properties {
	s := &Properties{backend: backend}
	s.load()
	return s
}

func (s *Properties) load() {
	version, _ := s.backend.Get(storage.KeyPropertiesVersion)
	raw, err := s.backend.Get(storage.KeyProperties)
	hasData := err == nil

	switch {
	case hasData && version != propertiesSchemaVersion:
		// Persisted blob predates the current schema: discard it once.
		if err := s.backend.Remove(storage.KeyProperties); err != nil {
			log.Printf("properties: failed to clear stale data: %v", err)
		}
		s.pinVersion()
		s.records = SeedProperties()
	case hasData:
		var records []models.Property
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			log.Printf("properties: discarding corrupt persisted data: %v", err)
			s.records = SeedProperties()
		} else {
			s.records = records
		}
	default:
		s.records = SeedProperties()
		s.pinVersion()
	}

	ids := make([]string, len(s.records))
	for i, p := range s.records {
		ids[i] = p.ID
	}
	s.lastID = maxNumericID(ids)
}

func (s *Properties) pinVersion() {
	if err := s.backend.Set(storage.KeyPropertiesVersion, propertiesSchemaVersion); err != nil {
		log.Printf("properties: failed to pin schema version: %v", err)
	}
}

// persist mirrors the collection to the backend. An empty collection is never
// written, so transient empty states cannot clobber seedable data.
func (s *Properties) persist() {
	if len(s.records) == 0 {
		return
	}
	data, err := json.Marshal(s.records)
	if err != nil {
		log.Printf("properties: failed to serialize collection: %v", err)
		return
	}
	if err := s.backend.Set(storage.KeyProperties, string(data)); err != nil {
		log.Printf("properties: failed to persist collection: %v", err)
	}
}

// Create assigns id and dates, derives pricePerArea and appends the listing.
// Numeric fields are accepted as-is; input validation belongs to the caller.
func (s *Properties) Create(input models.PropertyInput) models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := today()
	p := models.Property{
		ID:              nextID(&s.lastID),
		Title:           input.Title,
		Description:     input.Description,
		Price:           input.Price,
		Location:        input.Location,
		Bedrooms:        input.Bedrooms,
		Bathrooms:       input.Bathrooms,
		Area:            input.Area,
		Parking:         input.Parking,
		YearBuilt:       input.YearBuilt,
		Type:            input.Type,
		Status:          input.Status,
		ImageURL:        input.ImageURL,
		CreatedAt:       now,
		LastUpdated:     now,
		Owner:           input.Owner,
		Featured:        input.Featured,
		Characteristics: input.Characteristics,
		Services:        input.Services,
		PricePerArea:    PricePerArea(input.Price, input.Area),
		Condition:       input.Condition,
		PropertyType:    input.PropertyType,
	}
	if p.Characteristics == nil {
		p.Characteristics = []string{}
	}
	if p.Services == nil {
		p.Services = []string{}
	}
	if p.Condition == "" {
		p.Condition = "Good"
	}
	if p.PropertyType == "" {
		p.PropertyType = "House"
	}

	s.records = append(s.records, p)
	s.persist()
	return p
}

// Update merges the patch onto the record with the given id and refreshes
// lastUpdated. A missing id is a no-op; ok reports whether a record matched.
// pricePerArea is recomputed only when the patch carries both price and area.
func (s *Properties) Update(id string, patch models.PropertyPatch) (models.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Property{}, false
	}

	p := &s.records[i]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.Area != nil {
		p.Area = *patch.Area
	}
	if patch.Parking != nil {
		p.Parking = *patch.Parking
	}
	if patch.YearBuilt != nil {
		p.YearBuilt = *patch.YearBuilt
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Owner != nil {
		p.Owner = *patch.Owner
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Characteristics != nil {
		p.Characteristics = *patch.Characteristics
	}
	if patch.Services != nil {
		p.Services = *patch.Services
	}
	if patch.Condition != nil {
		p.Condition = *patch.Condition
	}
	if patch.PropertyType != nil {
		p.PropertyType = *patch.PropertyType
	}
	if patch.Price != nil && patch.Area != nil {
		p.PricePerArea = PricePerArea(p.Price, p.Area)
	}
	p.LastUpdated = today()

	s.persist()
	return *p, true
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, so repeated deletes are harmless.
func (s *Properties) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	s.persist()
	return true
}

// SetStatus updates only the status field plus lastUpdated.
func (s *Properties) SetStatus(id string, status models.Status) (models.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Property{}, false
	}
	s.records[i].Status = status
	s.records[i].LastUpdated = today()
	s.persist()
	return s.records[i], true
}

func (s *Properties) Get(id string) (models.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Property{}, false
	}
	return s.records[i], true
}

func (s *Properties) All() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Property(nil), s.records...)
}

// ByAdmin returns the properties the given admin may manage: shared ones plus
// those owned by that admin.
func (s *Properties) ByAdmin(adminID string) []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Property
	for _, p := range s.records {
		if p.Owner.ManageableBy(adminID) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns featured listings that are still available.
func (s *Properties) Featured() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Property
	for _, p := range s.records {
		if p.Featured && p.Status == models.StatusAvailable {
			out = append(out, p)
		}
	}
	return out
}

// Available returns every listing with status available.
func (s *Properties) Available() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Property
	for _, p := range s.records {
		if p.Status == models.StatusAvailable {
			out = append(out, p)
		}
	}
	return out
}

func (s *Properties) indexOf(id string) int {
	for i, p := range s.records {
		if p.ID == id {
			return i
		}
	}
	return -1
}
