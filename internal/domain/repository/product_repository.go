package repository

import (
	"context"

	"github.com/sangkips/posledger/internal/domain/entity"
)

// ProductRepository defines the interface for product reference data
type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// UpsertBatch inserts products, replacing rows with the same code
	UpsertBatch(ctx context.Context, products []entity.Product) error
}
