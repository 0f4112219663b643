package entity

import (
	"time"

	"github.com/sangkips/posledger/internal/domain/enum"
)

// Transaction is one recorded sale. Rows are append-only: created together
// with their items and never updated afterwards.
type Transaction struct {
	TransactionID   string     `gorm:"column:transaction_id;primaryKey;size:64" json:"transaction_id"`
	BusinessDate    string     `gorm:"column:yyyymmdd;size:8;not null;index" json:"yyyymmdd"`
	ReceiptNo       string     `gorm:"column:receipt_no;size:64;not null" json:"receipt_no"`
	RegisteredAtJST *string    `gorm:"column:registered_at_jst;size:19" json:"registered_at_jst"`
	RegisteredAtUTC *time.Time `gorm:"column:registered_at_utc" json:"registered_at_utc"`
	CashierName     string     `gorm:"column:cashier_name;size:100;not null" json:"cashier_name"`

	SubtotalExcl8  int64 `gorm:"column:subtotal_excl_8;not null;default:0" json:"subtotal_excl_8"`
	Tax8           int64 `gorm:"column:tax_8;not null;default:0" json:"tax_8"`
	SubtotalIncl8  int64 `gorm:"column:subtotal_incl_8;not null;default:0" json:"subtotal_incl_8"`
	SubtotalExcl10 int64 `gorm:"column:subtotal_excl_10;not null;default:0" json:"subtotal_excl_10"`
	Tax10          int64 `gorm:"column:tax_10;not null;default:0" json:"tax_10"`
	SubtotalIncl10 int64 `gorm:"column:subtotal_incl_10;not null;default:0" json:"subtotal_incl_10"`

	TotalExcl    *int64    `gorm:"column:total_excl" json:"total_excl"`
	TotalIncl    int64     `gorm:"column:total_incl;not null;default:0" json:"total_incl"`
	CreatedAtUTC time.Time `gorm:"column:created_at_utc;not null" json:"created_at_utc"`

	// Relationships
	Items []TransactionItem `gorm:"foreignKey:TransactionID;references:TransactionID" json:"items,omitempty"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem is a single receipt line. ID is the insertion sequence
// used to return lines in submission order.
type TransactionItem struct {
	ID              uint64       `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	TransactionID   string       `gorm:"column:transaction_id;size:64;not null;index" json:"-"`
	ProductCode     string       `gorm:"column:product_code;size:13;not null" json:"product_code"`
	ProductCategory *string      `gorm:"column:product_category;size:100" json:"product_category"`
	ProductName     string       `gorm:"column:product_name;size:255;not null" json:"product_name"`
	PosCost         *int64       `gorm:"column:pos_cost" json:"pos_cost"`
	PriceExcl       int64        `gorm:"column:price_excl;not null" json:"price_excl"`
	Qty             int64        `gorm:"column:qty;not null" json:"qty"`
	LineAmountExcl  int64        `gorm:"column:line_amount_excl;not null" json:"line_amount_excl"`
	TaxRate         enum.TaxRate `gorm:"column:tax_rate;not null" json:"tax_rate"`
	CreatedAtUTC    time.Time    `gorm:"column:created_at_utc;not null" json:"-"`
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}
