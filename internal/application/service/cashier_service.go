package service

import (
	"context"
	"log"
	"time"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/domain/repository"
)

// CashierService handles the cashier picker list
type CashierService struct {
	cashierRepo repository.CashierRepository
}

// NewCashierService creates a new cashier service
func NewCashierService(cashierRepo repository.CashierRepository) *CashierService {
	return &CashierService{cashierRepo: cashierRepo}
}

// ListCashiers returns all cashiers ordered by name
func (s *CashierService) ListCashiers(ctx context.Context) ([]entity.Cashier, error) {
	cashiers, err := s.cashierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cashiers == nil {
		cashiers = []entity.Cashier{}
	}
	return cashiers, nil
}

// ImportCashiers adds cashiers, leaving existing names untouched
func (s *CashierService) ImportCashiers(ctx context.Context, cashiers []entity.Cashier) error {
	now := time.Now().UTC()
	for i := range cashiers {
		cashiers[i].UpdatedAtUTC = now
	}
	if err := s.cashierRepo.InsertIgnoreBatch(ctx, cashiers); err != nil {
		return err
	}
	log.Printf("Imported %d cashiers", len(cashiers))
	return nil
}
