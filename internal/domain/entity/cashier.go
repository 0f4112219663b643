package entity

import "time"

// Cashier is an entry in the cashier picker. Transactions store the name as
// free text and are not checked against this table.
type Cashier struct {
	CashierName  string    `gorm:"column:cashier_name;primaryKey;size:100" json:"cashier_name"`
	UpdatedAtUTC time.Time `gorm:"column:updated_at_utc" json:"-"`
}

// TableName returns the table name for the Cashier model
func (Cashier) TableName() string {
	return "cashiers"
}
