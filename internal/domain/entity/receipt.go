package entity

import "github.com/sangkips/posledger/internal/domain/enum"

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// TaxBucket is the per-rate aggregate of a transaction. Tax is rounded once
// per bucket, never per line.
type TaxBucket struct {
	TaxRate      enum.TaxRate `json:"tax_rate"`
	SubtotalExcl int64        `json:"subtotal_excl"`
	TaxAmount    int64        `json:"tax_amount"`
	SubtotalIncl int64        `json:"subtotal_incl"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	ProductCode    string       `json:"product_code"`
	ProductName    string       `json:"product_name"`
	Qty            int64        `json:"qty"`
	PriceExcl      int64        `json:"price_excl"`
	LineAmountExcl int64        `json:"line_amount_excl"`
	TaxRate        enum.TaxRate `json:"tax_rate"`
}

// Receipt is a value object assembled from a stored transaction.
// It is NOT a database entity.
type Receipt struct {
	TransactionID   string        `json:"transaction_id"`
	ReceiptNo       string        `json:"receipt_no"`
	BusinessDate    string        `json:"yyyymmdd"`
	RegisteredAtJST *string       `json:"registered_at_jst"`
	RegisteredAtUTC *string       `json:"registered_at_utc"`
	CashierName     string        `json:"cashier_name"`
	Items           []ReceiptItem `json:"items"`
	TaxSummary      []TaxBucket   `json:"tax_summary"`
	TotalExcl       *int64        `json:"total_excl"`
	TotalIncl       int64         `json:"total_incl"`
}
