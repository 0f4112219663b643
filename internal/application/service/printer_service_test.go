package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/infrastructure/database/dbtest"
	"github.com/sangkips/posledger/pkg/apperror"
	"github.com/sangkips/posledger/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrinterService(t *testing.T, p printer.Printer) *PrinterService {
	t.Helper()
	txns := newTransactionService(dbtest.New(t))
	_, err := txns.Register(context.Background(), sampleInput("P-1"))
	require.NoError(t, err)

	layout := PrintLayout{Header: entity.ReceiptHeader{StoreName: "Corner Shop", Phone: "03-0000-0000"}, Width: 32}
	return NewPrinterService(p, txns, layout, printer.TypeNetwork)
}

func TestPrintReceiptSendsJob(t *testing.T) {
	rec := &printer.Recorder{}
	svc := newPrinterService(t, rec)

	receipt, err := svc.PrintReceipt(context.Background(), "2024-05-01", "P-1")
	require.NoError(t, err)
	assert.Equal(t, "20240501_P-1", receipt.TransactionID)

	jobs := rec.Jobs()
	require.Len(t, jobs, 1)
	out := string(jobs[0])
	assert.Contains(t, out, "Corner Shop")
	assert.Contains(t, out, "*Rice ball")
	assert.Contains(t, out, "8% subtotal")
	assert.Contains(t, out, "10% tax")
	assert.Contains(t, out, "¥546")
}

func TestPrintReceiptNotFound(t *testing.T) {
	svc := newPrinterService(t, &printer.Recorder{})

	_, err := svc.PrintReceipt(context.Background(), "2024-05-01", "nope")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPrintReceiptReturnsReceiptOnPrinterFailure(t *testing.T) {
	svc := newPrinterService(t, &printer.Recorder{Err: errors.New("paper out")})

	receipt, err := svc.PrintReceipt(context.Background(), "2024-05-01", "P-1")

	require.Error(t, err)
	assert.NotNil(t, receipt)
}

func TestGetStatus(t *testing.T) {
	svc := newPrinterService(t, &printer.Recorder{})

	status := svc.GetStatus()

	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, printer.TypeNetwork, status.Type)
}

func TestYen(t *testing.T) {
	assert.Equal(t, "¥0", yen(0))
	assert.Equal(t, "¥999", yen(999))
	assert.Equal(t, "¥1,000", yen(1000))
	assert.Equal(t, "¥1,234,567", yen(1234567))
	assert.Equal(t, "-¥12,000", yen(-12000))
	assert.Equal(t, "-¥9,223,372,036,854,775,808", yen(math.MinInt64))
	assert.Equal(t, "¥9,223,372,036,854,775,807", yen(math.MaxInt64))
}
