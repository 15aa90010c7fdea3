package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/storage"
)

const amenitiesSchemaVersion = "2"

// Amenities holds the amenity catalog with the same persistence and
// migration behavior as the property store, on its own keys.
type Amenities struct {
	mu      sync.RWMutex
	backend storage.KeyValue
	records []models.Amenity
	lastID  int64
}

func NewAmenities(backend storage.KeyValue) *Amenities {
	s := &Amenities{backend: backend}
	s.load()
	return s
}

func (s *Amenities) load() {
	version, _ := s.backend.Get(storage.KeyAmenitiesVersion)
	raw, err := s.backend.Get(storage.KeyAmenities)
	hasData := err == nil

	switch {
	case hasData && version != amenitiesSchemaVersion:
		if err := s.backend.Remove(storage.KeyAmenities); err != nil {
			log.Printf("amenities: failed to clear stale data: %v", err)
		}
		s.pinVersion()
		s.records = SeedAmenities()
	case hasData:
		var records []models.Amenity
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			log.Printf("amenities: discarding corrupt persisted data: %v", err)
			s.records = SeedAmenities()
		} else {
			s.records = records
		}
	default:
		s.records = SeedAmenities()
		s.pinVersion()
	}

	ids := make([]string, len(s.records))
	for i, a := range s.records {
		ids[i] = a.ID
	}
	s.lastID = maxNumericID(ids)
}

func (s *Amenities) pinVersion() {
	if err := s.backend.Set(storage.KeyAmenitiesVersion, amenitiesSchemaVersion); err != nil {
		log.Printf("amenities: failed to pin schema version: %v", err)
	}
}

func (s *Amenities) persist() {
	if len(s.records) == 0 {
		return
	}
	data, err := json.Marshal(s.records)
	if err != nil {
		log.Printf("amenities: failed to serialize catalog: %v", err)
		return
	}
	if err := s.backend.Set(storage.KeyAmenities, string(data)); err != nil {
		log.Printf("amenities: failed to persist catalog: %v", err)
	}
}

func (s *Amenities) Create(input models.AmenityInput) models.Amenity {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Amenity{
		ID:        nextID(&s.lastID),
		Name:      input.Name,
		Icon:      input.Icon,
		Category:  input.Category,
		IsActive:  input.IsActive,
		CreatedAt: today(),
	}
	s.records = append(s.records, a)
	s.persist()
	return a
}

func (s *Amenities) Update(id string, patch models.AmenityPatch) (models.Amenity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Amenity{}, false
	}
	a := &s.records[i]
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Icon != nil {
		a.Icon = *patch.Icon
	}
	if patch.Category != nil {
		a.Category = *patch.Category
	}
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}
	s.persist()
	return *a, true
}

func (s *Amenities) Delete(id string) bool {
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

// Toggle flips the isActive flag.
func (s *Amenities) Toggle(id string) (models.Amenity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Amenity{}, false
	}
	s.records[i].IsActive = !s.records[i].IsActive
	s.persist()
	return s.records[i], true
}

func (s *Amenities) All() []models.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Amenity(nil), s.records...)
}

// Active returns the catalog entries currently enabled.
func (s *Amenities) Active() []models.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Amenity
	for _, a := range s.records {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

// ByCategory returns active entries in the given category.
func (s *Amenities) ByCategory(category models.AmenityCategory) []models.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Amenity
	for _, a := range s.records {
		if a.IsActive && a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

func (s *Amenities) indexOf(id string) int {
	for i, a := range s.records {
		if a.ID == id {
			return i
		}
	}
	return -1
}
