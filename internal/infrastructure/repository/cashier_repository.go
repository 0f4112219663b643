package repository

import (
	"context"

	"github.com/sangkips/posledger/internal/domain/entity"
	domainRepo "github.com/sangkips/posledger/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *gorm.DB) domainRepo.CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) List(ctx context.Context) ([]entity.Cashier, error) {
	var cashiers []entity.Cashier
	err := r.db.WithContext(ctx).
		Order("cashier_name ASC").
		Find(&cashiers).Error
	return cashiers, err
}

func (r *cashierRepository) InsertIgnoreBatch(ctx context.Context, cashiers []entity.Cashier) error {
	if len(cashiers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&cashiers, upsertBatchSize).Error
}
