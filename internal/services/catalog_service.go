package services

import (
	"errors"
	"fmt"

	"socialgrowth/internal/catalog"
	"socialgrowth/internal/models"
	"socialgrowth/internal/repositories"
)

// Selectors lists the values the catalog can be filtered by.
type Selectors struct {
	Platforms []models.Platform    `json:"platforms"`
	Types     []models.ServiceType `json:"types"`
}

// CatalogService handles browsing of the service catalog.
type CatalogService struct {
	repo repositories.ServiceRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ServiceRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// List returns the services matching criteria in catalog order.
func (s *CatalogService) List(criteria catalog.Criteria) ([]models.Service, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog.Filter(all, criteria), nil
}

// Get returns one service.
func (s *CatalogService) Get(id string) (*models.Service, error) {
	svc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		return nil, err
	}
	return svc, nil
}

// Selectors returns the distinct platforms and types of the catalog.
func (s *CatalogService) Selectors() (Selectors, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return Selectors{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return Selectors{
		Platforms: catalog.Platforms(all),
		Types:     catalog.Types(all),
	}, nil
}
