package repository

import (
	"context"
	"fmt"
	"strings"

	domainRepo "github.com/sangkips/posledger/internal/domain/repository"
	"gorm.io/gorm"
)

const (
	transactionsTable = "transactions"
	itemsTable        = "transaction_items"

	colRegisteredAtUTC   = "registered_at_utc"
	colRegisteredAtLocal = "registered_at_jst"
	colTotalExcl         = "total_excl"
)

// requiredHeaderColumns is always written; every deployment has these.
var requiredHeaderColumns = []string{
	"transaction_id",
	"yyyymmdd",
	"receipt_no",
	"cashier_name",
	"subtotal_excl_8",
	"tax_8",
	"subtotal_incl_8",
	"subtotal_excl_10",
	"tax_10",
	"subtotal_incl_10",
	"total_incl",
	"created_at_utc",
}

// probeCapabilities reads the transactions column set in a single round trip
func probeCapabilities(ctx context.Context, db *gorm.DB) (domainRepo.SchemaCapabilities, error) {
	columns, err := db.WithContext(ctx).Migrator().ColumnTypes(transactionsTable)
	if err != nil {
		return domainRepo.SchemaCapabilities{}, fmt.Errorf("failed to inspect %s columns: %w", transactionsTable, err)
	}

	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[strings.ToLower(c.Name())] = true
	}

	return domainRepo.SchemaCapabilities{
		RegisteredAtUTC:   present[colRegisteredAtUTC],
		RegisteredAtLocal: present[colRegisteredAtLocal],
		TotalExcl:         present[colTotalExcl],
	}, nil
}

// headerSelectColumns lists the columns the reader may select under caps
func headerSelectColumns(caps domainRepo.SchemaCapabilities) []string {
	cols := []string{
		"transaction_id",
		"yyyymmdd",
		"receipt_no",
		"cashier_name",
		"subtotal_excl_8",
		"tax_8",
		"subtotal_incl_8",
		"subtotal_excl_10",
		"tax_10",
		"subtotal_incl_10",
		"total_incl",
	}
	if caps.RegisteredAtLocal {
		cols = append(cols, colRegisteredAtLocal)
	}
	if caps.RegisteredAtUTC {
		cols = append(cols, colRegisteredAtUTC)
	}
	if caps.TotalExcl {
		cols = append(cols, colTotalExcl)
	}
	return cols
}
