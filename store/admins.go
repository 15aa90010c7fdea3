package store

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/kxxnxr13/web-inmobiliaria/models"
	"github.com/kxxnxr13/web-inmobiliaria/storage"
	"github.com/kxxnxr13/web-inmobiliaria/utils"
)

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// deactivated accounts alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken = errors.New("email already registered")
)

// SuperAdmin is the single fixed super-admin identity. The password arrives
// from configuration and is hashed before it is held in memory.
type SuperAdmin struct {
	ID       string
	Email    string
	Name     string
	Password string
}

// Admins manages admin accounts and authentication. Unlike the property
// store there is no seed catalog: the collection starts empty and only the
// super-admin can grow it.
type Admins struct {
	mu        sync.RWMutex
	backend   storage.KeyValue
	super     models.User
	superHash string
	records   []models.Admin
	lastID    int64
}

func NewAdmins(backend storage.KeyValue, super SuperAdmin) (*Admins, error) {
	hash, err := utils.HashPassword(super.Password)
	if err != nil {
		return nil, err
	}
	s := &Admins{
		backend: backend,
		super: models.User{
			ID:    super.ID,
			Email: super.Email,
			Role:  models.RoleSuperAdmin,
			Name:  super.Name,
		},
		superHash: hash,
	}
	s.load()
	return s, nil
}

func (s *Admins) load() {
	raw, err := s.backend.Get(storage.KeyAdmins)
	if err != nil {
		return
	}
	var records []models.Admin
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Printf("admins: discarding corrupt persisted data: %v", err)
		return
	}
	s.records = records

	ids := make([]string, len(s.records))
	for i, a := range s.records {
		ids[i] = a.ID
	}
	s.lastID = maxNumericID(ids)
}

func (s *Admins) persist() {
	data, err := json.Marshal(s.records)
	if err != nil {
		log.Printf("admins: failed to serialize accounts: %v", err)
		return
	}
	if err := s.backend.Set(storage.KeyAdmins, string(data)); err != nil {
		log.Printf("admins: failed to persist accounts: %v", err)
	}
}

// Authenticate resolves credentials to a user identity. Every failure mode
// returns ErrInvalidCredentials.
func (s *Admins) Authenticate(email, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if email == s.super.Email && utils.CheckPassword(s.superHash, password) == nil {
		return s.super, nil
	}

	for _, a := range s.records {
		if a.Email != email || !a.IsActive {
			continue
		}
		if utils.CheckPassword(a.Password, password) != nil {
			continue
		}
		return models.User{
			ID:    a.ID,
			Email: a.Email,
			Role:  models.RoleAdmin,
			Name:  a.Name,
		}, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Create registers a new admin account. The email must be unused; the
// password is stored hashed.
func (s *Admins) Create(req models.CreateAdminRequest) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.records {
		if a.Email == req.Email {
			return models.Admin{}, ErrEmailTaken
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.Admin{}, err
	}

	a := models.Admin{
		ID:        nextID(&s.lastID),
		Email:     req.Email,
		Name:      req.Name,
		Password:  hash,
		CreatedAt: today(),
		IsActive:  req.IsActive,
	}
	s.records = append(s.records, a)
	s.persist()
	return a, nil
}

// Toggle flips an account between active and deactivated. A deactivated
// account can no longer authenticate.
func (s *Admins) Toggle(id string) (models.Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].IsActive = !s.records[i].IsActive
			s.persist()
			return s.records[i], true
		}
	}
	return models.Admin{}, false
}

func (s *Admins) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *Admins) List() []models.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Admin(nil), s.records...)
}

// SaveSession persists the authenticated user record.
func (s *Admins) SaveSession(u models.User) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := s.backend.Set(storage.KeyAuthUser, string(data)); err != nil {
		log.Printf("admins: failed to persist session: %v", err)
	}
}

func (s *Admins) ClearSession() {
	if err := s.backend.Remove(storage.KeyAuthUser); err != nil {
		log.Printf("admins: failed to clear session: %v", err)
	}
}

func (s *Admins) Session() (models.User, bool) {
	raw, err := s.backend.Get(storage.KeyAuthUser)
	if err != nil {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, false
	}
	return u, true
}
