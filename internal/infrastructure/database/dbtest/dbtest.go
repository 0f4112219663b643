// Package dbtest provides throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/posledger/internal/infrastructure/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewEmpty returns an isolated in-memory database without any tables.
func NewEmpty(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.OpenSQLite(dsn, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// New returns an isolated in-memory database with the full migrated schema.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewEmpty(t)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// ReducedTransactionsDDL creates a transactions table without any of the
// optional columns (registered_at_utc, registered_at_jst, total_excl).
const ReducedTransactionsDDL = `CREATE TABLE transactions (
	transaction_id TEXT PRIMARY KEY,
	yyyymmdd TEXT NOT NULL,
	receipt_no TEXT NOT NULL,
	cashier_name TEXT NOT NULL,
	subtotal_excl_8 INTEGER NOT NULL,
	tax_8 INTEGER NOT NULL,
	subtotal_incl_8 INTEGER NOT NULL,
	subtotal_excl_10 INTEGER NOT NULL,
	tax_10 INTEGER NOT NULL,
	subtotal_incl_10 INTEGER NOT NULL,
	total_incl INTEGER NOT NULL,
	created_at_utc DATETIME NOT NULL
)`

// NewReduced returns a database whose transactions table lacks every
// optional column; the other tables are migrated normally.
func NewReduced(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewEmpty(t)
	require.NoError(t, db.Exec(ReducedTransactionsDDL).Error)
	require.NoError(t, db.Exec(`CREATE TABLE transaction_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	transaction_id TEXT NOT NULL,
	product_code TEXT NOT NULL,
	product_category TEXT,
	product_name TEXT NOT NULL,
	pos_cost INTEGER,
	price_excl INTEGER NOT NULL,
	qty INTEGER NOT NULL,
	line_amount_excl INTEGER NOT NULL,
	tax_rate INTEGER NOT NULL,
	created_at_utc DATETIME NOT NULL
)`).Error)
	return db
}
