package response

import "github.com/sangkips/posledger/internal/domain/entity"

// Totals is the per-rate breakdown returned after a registration.
type Totals struct {
	SubtotalExcl8  int64 `json:"subtotal_excl_8"`
	Tax8           int64 `json:"tax_8"`
	SubtotalIncl8  int64 `json:"subtotal_incl_8"`
	SubtotalExcl10 int64 `json:"subtotal_excl_10"`
	Tax10          int64 `json:"tax_10"`
	SubtotalIncl10 int64 `json:"subtotal_incl_10"`
	TotalExcl      int64 `json:"total_excl"`
	TotalIncl      int64 `json:"total_incl"`
}

// NewTotals reads the stored header columns of txn.
func NewTotals(txn *entity.Transaction) Totals {
	t := Totals{
		SubtotalExcl8:  txn.SubtotalExcl8,
		Tax8:           txn.Tax8,
		SubtotalIncl8:  txn.SubtotalIncl8,
		SubtotalExcl10: txn.SubtotalExcl10,
		Tax10:          txn.Tax10,
		SubtotalIncl10: txn.SubtotalIncl10,
		TotalIncl:      txn.TotalIncl,
	}
	if txn.TotalExcl != nil {
		t.TotalExcl = *txn.TotalExcl
	} else {
		t.TotalExcl = txn.SubtotalExcl8 + txn.SubtotalExcl10
	}
	return t
}
