package repositories

import (
	"fmt"

	"socialgrowth/internal/catalog"
	"socialgrowth/internal/models"
)

// ServiceRepository gives read access to the service catalog.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
}

// StaticServiceRepository serves the built-in catalog. It is read-only and safe for
// concurrent use because the catalog is never mutated.
type StaticServiceRepository struct {
	services []models.Service
}

// NewStaticServiceRepository creates a repository over the given services, or over
// catalog.Default() when none are passed.
func NewStaticServiceRepository(services ...models.Service) *StaticServiceRepository {
	if len(services) == 0 {
		services = catalog.Default()
	}
	return &StaticServiceRepository{services: services}
}

// GetAll returns the catalog in display order.
func (r *StaticServiceRepository) GetAll() ([]models.Service, error) {
	out := make([]models.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

// GetByID returns a service by its ID.
func (r *StaticServiceRepository) GetByID(id string) (*models.Service, error) {
	s, ok := catalog.Find(r.services, id)
	if !ok {
		return nil, fmt.Errorf("service with ID %s: %w", id, ErrNotFound)
	}
	return &s, nil
}
