package repository

import (
	"context"
	"errors"

	"github.com/sangkips/posledger/internal/domain/entity"
)

// ErrAlreadyRegistered is returned when a transaction_id already exists,
// either from the pre-check or from the store's uniqueness constraint.
var ErrAlreadyRegistered = errors.New("transaction already registered")

// SchemaCapabilities records which optional transaction columns exist in the
// connected store. It is probed once per operation and threaded through both
// the write and read paths.
type SchemaCapabilities struct {
	RegisteredAtUTC   bool // registered_at_utc
	RegisteredAtLocal bool // registered_at_jst
	TotalExcl         bool // total_excl
}

// FullSchema is the capability set of a store created by AutoMigrate.
func FullSchema() SchemaCapabilities {
	return SchemaCapabilities{RegisteredAtUTC: true, RegisteredAtLocal: true, TotalExcl: true}
}

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	// Capabilities introspects the transactions table columns
	Capabilities(ctx context.Context) (SchemaCapabilities, error)
	// Create atomically inserts the header and all items, or nothing
	Create(ctx context.Context, caps SchemaCapabilities, txn *entity.Transaction) error
	// GetWithItems returns the transaction and its items, or nil if absent
	GetWithItems(ctx context.Context, caps SchemaCapabilities, transactionID string) (*entity.Transaction, error)
}
