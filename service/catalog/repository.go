package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalogRepo "quickview.GO/model/repository/catalog"
	"quickview.GO/service/quickview"
)

// RepositorySource serves products stored by catalog:import.
type RepositorySource struct {
	repo *catalogRepo.ProductRepository
}

func NewRepositorySource(repo *catalogRepo.ProductRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) Lookup(ctx context.Context, handle string) (quickview.Product, error) {
	e, err := s.repo.FindByHandle(ctx, handle)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return quickview.Product{}, fmt.Errorf("%s: %w", handle, quickview.ErrProductNotFound)
	}
	if err != nil {
		return quickview.Product{}, err
	}
	return FromEntity(e), nil
}
