package service

import (
	"context"
	"testing"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/domain/enum"
	"github.com/sangkips/posledger/internal/infrastructure/database/dbtest"
	"github.com/sangkips/posledger/internal/infrastructure/repository"
	"github.com/sangkips/posledger/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductServiceImportAndLookup(t *testing.T) {
	svc := NewProductService(repository.NewProductRepository(dbtest.New(t)))
	ctx := context.Background()

	require.NoError(t, svc.ImportProducts(ctx, []entity.Product{
		{ProductCode: "4901234567890", ProductName: "Tea", PriceExcl: 120, TaxRate: enum.TaxRateReduced},
	}))

	product, err := svc.GetByCode(ctx, "4901234567890")
	require.NoError(t, err)
	assert.Equal(t, "Tea", product.ProductName)
	assert.False(t, product.UpdatedAtUTC.IsZero())

	_, err = svc.GetByCode(ctx, "1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCashierServiceListsEmpty(t *testing.T) {
	svc := NewCashierService(repository.NewCashierRepository(dbtest.New(t)))

	cashiers, err := svc.ListCashiers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, cashiers)
	assert.Empty(t, cashiers)
}

func TestCashierServiceImportKeepsExisting(t *testing.T) {
	svc := NewCashierService(repository.NewCashierRepository(dbtest.New(t)))
	ctx := context.Background()

	require.NoError(t, svc.ImportCashiers(ctx, []entity.Cashier{{CashierName: "Tanaka"}, {CashierName: "Abe"}}))
	require.NoError(t, svc.ImportCashiers(ctx, []entity.Cashier{{CashierName: "Abe"}}))

	cashiers, err := svc.ListCashiers(ctx)
	require.NoError(t, err)
	require.Len(t, cashiers, 2)
	assert.Equal(t, "Abe", cashiers[0].CashierName)
	assert.Equal(t, "Tanaka", cashiers[1].CashierName)
}
