package repository

import (
	"context"

	"github.com/sangkips/posledger/internal/domain/entity"
)

// CashierRepository defines the interface for the cashier list
type CashierRepository interface {
	List(ctx context.Context) ([]entity.Cashier, error)
	// InsertIgnoreBatch inserts cashiers, skipping names that already exist
	InsertIgnoreBatch(ctx context.Context, cashiers []entity.Cashier) error
}
