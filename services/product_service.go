package services

import (
	"context"

	"go.pilab.hu/partsdesk/domain"
	"go.pilab.hu/partsdesk/internal/query"
)

// ProductService handles the parts catalog.
type ProductService struct {
	products ProductRepository
}

// NewProductService creates a ProductService.
func NewProductService(products ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Update upserts a catalog entry. An id, when present, must be well formed.
func (s *ProductService) Update(ctx context.Context, up domain.ProductUpsert) error {
	if up.ID != "" {
		if err := domain.ValidateID(up.ID); err != nil {
			return err
		}
	}
	return s.products.Upsert(ctx, up)
}

// Profile returns one product by id.
func (s *ProductService) Profile(ctx context.Context, id string) (*domain.Product, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, id)
}

// Search returns one page of matching products.
func (s *ProductService) Search(ctx context.Context, q query.ProductSearch) (*domain.Page[domain.Product], error) {
	return s.products.Search(ctx, q)
}

// Showcase returns a random sample of curated products.
func (s *ProductService) Showcase(ctx context.Context, flag domain.ShowcaseFlag, size int) ([]domain.Product, error) {
	return s.products.Showcase(ctx, flag, size)
}

// Facet returns the distinct values of a public facet field. Unknown
// field names are a validation failure, never a raw query input.
func (s *ProductService) Facet(ctx context.Context, field string) ([]string, error) {
	stored, ok := query.FacetFields[field]
	if !ok {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "type",
			Code:  domain.CodeInvalidType,
		})
	}
	return s.products.FacetValues(ctx, stored)
}

// Remove deletes one product by id.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	removed, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNoRecord
	}
	return nil
}
