// Package service contains the business logic between HTTP handlers
// and the persistence layer.
package service

import (
	"fmt"

	"github.com/razorspoint/timeline-backend-go/internal/models"
)

// LocationRepository interface for dependency injection
type LocationRepository interface {
	List() ([]models.NamedLocation, error)
	ListBusinesses() ([]models.NamedLocation, error)
	GetHome() (*models.NamedLocation, error)
	GetByID(id int64) (*models.NamedLocation, error)
	Create(loc *models.NamedLocation) error
	Update(loc *models.NamedLocation) error
	Delete(id int64) error
}

// LocationService handles named-location business logic
type LocationService struct {
	repo LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// List returns all configured locations
func (s *LocationService) List() ([]models.NamedLocation, error) {
	return s.repo.List()
}

// GetByID returns a single location
func (s *LocationService) GetByID(id int64) (*models.NamedLocation, error) {
	return s.repo.GetByID(id)
}

// Create validates and stores a new location. Only one home location
// may exist; matching depends on a single distance origin.
func (s *LocationService) Create(loc *models.NamedLocation) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	if loc.Kind == models.KindHome {
		if existing, err := s.repo.GetHome(); err == nil && existing != nil {
			return fmt.Errorf("a home location already exists: %s", existing.Name)
		}
	}

	return s.repo.Create(loc)
}

// Update validates and overwrites an existing location
func (s *LocationService) Update(loc *models.NamedLocation) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	if loc.Kind == models.KindHome {
		if existing, err := s.repo.GetHome(); err == nil && existing != nil && existing.ID != loc.ID {
			return fmt.Errorf("a home location already exists: %s", existing.Name)
		}
	}

	return s.repo.Update(loc)
}

// Delete removes a location
func (s *LocationService) Delete(id int64) error {
	return s.repo.Delete(id)
}
