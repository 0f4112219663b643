package service

import (
	"context"
	"log"
	"time"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/domain/repository"
	"github.com/sangkips/posledger/pkg/apperror"
)

// ProductService handles product master lookups and imports
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// GetByCode returns the product with the given code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	product, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.ErrNotFound
	}
	return product, nil
}

// ImportProducts replaces products by code. Existing rows with the same
// code are overwritten.
func (s *ProductService) ImportProducts(ctx context.Context, products []entity.Product) error {
	now := time.Now().UTC()
	for i := range products {
		products[i].UpdatedAtUTC = now
	}
	if err := s.productRepo.UpsertBatch(ctx, products); err != nil {
		return err
	}
	log.Printf("Imported %d products", len(products))
	return nil
}
