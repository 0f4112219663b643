package repository

import "gorm.io/gorm"

// ByTransactionID returns a GORM scope that filters header or item rows to
// one transaction.
func ByTransactionID(transactionID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("transaction_id = ?", transactionID)
	}
}

// SubmissionOrder returns item rows in the order they were inserted
func SubmissionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
