package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sangkips/posledger/internal/domain/entity"
	domainRepo "github.com/sangkips/posledger/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Capabilities(ctx context.Context) (domainRepo.SchemaCapabilities, error) {
	return probeCapabilities(ctx, r.db)
}

// Create writes the header and items in one database transaction. The
// pre-check gives a clean answer for sequential resubmissions; the primary
// key on transaction_id decides concurrent ones.
func (r *transactionRepository) Create(ctx context.Context, caps domainRepo.SchemaCapabilities, txn *entity.Transaction) error {
	header := headerValues(caps, txn)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(transactionsTable).
			Scopes(ByTransactionID(txn.TransactionID)).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domainRepo.ErrAlreadyRegistered
		}

		if err := tx.Table(transactionsTable).Create(header).Error; err != nil {
			return err
		}

		if len(txn.Items) == 0 {
			return nil
		}
		for i := range txn.Items {
			txn.Items[i].TransactionID = txn.TransactionID
			txn.Items[i].CreatedAtUTC = txn.CreatedAtUTC
		}
		return tx.Table(itemsTable).Create(&txn.Items).Error
	})

	if isUniqueViolation(err) {
		return domainRepo.ErrAlreadyRegistered
	}
	return err
}

// headerValues builds the insert row: the fixed column set plus whichever
// optional columns caps reports as present.
func headerValues(caps domainRepo.SchemaCapabilities, txn *entity.Transaction) map[string]interface{} {
	row := map[string]interface{}{
		"transaction_id":   txn.TransactionID,
		"yyyymmdd":         txn.BusinessDate,
		"receipt_no":       txn.ReceiptNo,
		"cashier_name":     txn.CashierName,
		"subtotal_excl_8":  txn.SubtotalExcl8,
		"tax_8":            txn.Tax8,
		"subtotal_incl_8":  txn.SubtotalIncl8,
		"subtotal_excl_10": txn.SubtotalExcl10,
		"tax_10":           txn.Tax10,
		"subtotal_incl_10": txn.SubtotalIncl10,
		"total_incl":       txn.TotalIncl,
		"created_at_utc":   txn.CreatedAtUTC,
	}
	if caps.RegisteredAtLocal && txn.RegisteredAtJST != nil {
		row[colRegisteredAtLocal] = *txn.RegisteredAtJST
	}
	if caps.RegisteredAtUTC && txn.RegisteredAtUTC != nil {
		row[colRegisteredAtUTC] = *txn.RegisteredAtUTC
	}
	if caps.TotalExcl && txn.TotalExcl != nil {
		row[colTotalExcl] = *txn.TotalExcl
	}
	return row
}

// headerRow is the scan target for the header select. Optional columns are
// nullable so that absent columns and NULL values read the same way.
type headerRow struct {
	TransactionID   string         `gorm:"column:transaction_id"`
	BusinessDate    string         `gorm:"column:yyyymmdd"`
	ReceiptNo       string         `gorm:"column:receipt_no"`
	CashierName     string         `gorm:"column:cashier_name"`
	SubtotalExcl8   int64          `gorm:"column:subtotal_excl_8"`
	Tax8            int64          `gorm:"column:tax_8"`
	SubtotalIncl8   int64          `gorm:"column:subtotal_incl_8"`
	SubtotalExcl10  int64          `gorm:"column:subtotal_excl_10"`
	Tax10           int64          `gorm:"column:tax_10"`
	SubtotalIncl10  int64          `gorm:"column:subtotal_incl_10"`
	TotalIncl       int64          `gorm:"column:total_incl"`
	RegisteredAtJST sql.NullString `gorm:"column:registered_at_jst"`
	RegisteredAtUTC sql.NullString `gorm:"column:registered_at_utc"`
	TotalExcl       sql.NullInt64  `gorm:"column:total_excl"`
}

func (r *transactionRepository) GetWithItems(ctx context.Context, caps domainRepo.SchemaCapabilities, transactionID string) (*entity.Transaction, error) {
	var row headerRow
	res := r.db.WithContext(ctx).
		Table(transactionsTable).
		Select(headerSelectColumns(caps)).
		Scopes(ByTransactionID(transactionID)).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	txn := row.toEntity()

	if err := r.db.WithContext(ctx).
		Table(itemsTable).
		Scopes(ByTransactionID(transactionID), SubmissionOrder).
		Find(&txn.Items).Error; err != nil {
		return nil, fmt.Errorf("failed to load items for %s: %w", transactionID, err)
	}
	return txn, nil
}

func (h headerRow) toEntity() *entity.Transaction {
	txn := &entity.Transaction{
		TransactionID:  h.TransactionID,
		BusinessDate:   h.BusinessDate,
		ReceiptNo:      h.ReceiptNo,
		CashierName:    h.CashierName,
		SubtotalExcl8:  h.SubtotalExcl8,
		Tax8:           h.Tax8,
		SubtotalIncl8:  h.SubtotalIncl8,
		SubtotalExcl10: h.SubtotalExcl10,
		Tax10:          h.Tax10,
		SubtotalIncl10: h.SubtotalIncl10,
		TotalIncl:      h.TotalIncl,
	}
	if h.RegisteredAtJST.Valid {
		local := h.RegisteredAtJST.String
		txn.RegisteredAtJST = &local
	}
	if h.RegisteredAtUTC.Valid {
		if t, ok := parseStoredInstant(h.RegisteredAtUTC.String); ok {
			txn.RegisteredAtUTC = &t
		}
	}
	if h.TotalExcl.Valid {
		total := h.TotalExcl.Int64
		txn.TotalExcl = &total
	}
	return txn
}

// storedInstantLayouts covers timestamps written by the pgx and sqlite
// drivers as well as ISO strings written by other clients.
var storedInstantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func parseStoredInstant(s string) (time.Time, bool) {
	for _, layout := range storedInstantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
