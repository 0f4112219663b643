package ledger

import (
	"fmt"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/domain/enum"
)

// TaxSummary is the rate-bucketed view of a transaction. Both supported
// rates are always present, in enum.TaxRates order.
type TaxSummary struct {
	Buckets   []entity.TaxBucket
	TotalExcl int64
	TotalIncl int64
}

// MaxAmount bounds every stored money value: a line amount, a bucket
// subtotal and the transaction totals.
const MaxAmount int64 = 1_000_000_000_000_000

// AmountError reports a money value above MaxAmount.
type AmountError struct {
	Field string
}

func (e *AmountError) Error() string {
	return e.Field + " is too large"
}

// LineAmount returns price_excl * qty, the only amount ever computed per line.
func LineAmount(priceExcl, qty int64) (int64, bool) {
	if priceExcl < 0 || qty < 0 {
		return 0, false
	}
	if qty != 0 && priceExcl > MaxAmount/qty {
		return 0, false
	}
	return priceExcl * qty, true
}

// CeilTax returns ceil(subtotal * rate / 100) for a non-negative subtotal.
// Splitting at 100 keeps the intermediate product within int64.
func CeilTax(subtotalExcl int64, rate enum.TaxRate) int64 {
	r := int64(rate)
	q := subtotalExcl / 100 * r
	rem := subtotalExcl % 100 * r
	q += rem / 100
	if rem%100 > 0 {
		q++
	}
	return q
}

// Aggregate partitions items by tax rate and rounds tax once per bucket.
// Amounts above MaxAmount yield an *AmountError naming the field.
func Aggregate(items []entity.TransactionItem) (TaxSummary, error) {
	subtotals := make(map[enum.TaxRate]int64, 2)
	var totalExcl int64
	for i, it := range items {
		line, ok := LineAmount(it.PriceExcl, it.Qty)
		if !ok {
			return TaxSummary{}, &AmountError{Field: fmt.Sprintf("items[%d].line_amount_excl", i)}
		}
		if totalExcl > MaxAmount-line {
			return TaxSummary{}, &AmountError{Field: "total_excl"}
		}
		totalExcl += line
		subtotals[it.TaxRate] += line
	}

	var s TaxSummary
	for _, rate := range enum.TaxRates() {
		excl := subtotals[rate]
		tax := CeilTax(excl, rate)
		s.Buckets = append(s.Buckets, entity.TaxBucket{
			TaxRate:      rate,
			SubtotalExcl: excl,
			TaxAmount:    tax,
			SubtotalIncl: excl + tax,
		})
		s.TotalExcl += excl
		s.TotalIncl += excl + tax
	}
	if s.TotalIncl > MaxAmount {
		return TaxSummary{}, &AmountError{Field: "total_incl"}
	}
	return s, nil
}

// Bucket returns the bucket for rate; unknown rates yield a zero bucket.
func (s TaxSummary) Bucket(rate enum.TaxRate) entity.TaxBucket {
	for _, b := range s.Buckets {
		if b.TaxRate == rate {
			return b
		}
	}
	return entity.TaxBucket{TaxRate: rate}
}

// ApplyTo copies the aggregate onto the transaction header columns.
func (s TaxSummary) ApplyTo(txn *entity.Transaction) {
	b8 := s.Bucket(enum.TaxRateReduced)
	b10 := s.Bucket(enum.TaxRateStandard)

	txn.SubtotalExcl8, txn.Tax8, txn.SubtotalIncl8 = b8.SubtotalExcl, b8.TaxAmount, b8.SubtotalIncl
	txn.SubtotalExcl10, txn.Tax10, txn.SubtotalIncl10 = b10.SubtotalExcl, b10.TaxAmount, b10.SubtotalIncl

	totalExcl := s.TotalExcl
	txn.TotalExcl = &totalExcl
	txn.TotalIncl = s.TotalIncl
}

// SummaryFromTransaction rebuilds the view from the stored header. The
// stored buckets are authoritative; nothing is recomputed from the items.
func SummaryFromTransaction(txn *entity.Transaction) TaxSummary {
	s := TaxSummary{
		Buckets: []entity.TaxBucket{
			{
				TaxRate:      enum.TaxRateReduced,
				SubtotalExcl: txn.SubtotalExcl8,
				TaxAmount:    txn.Tax8,
				SubtotalIncl: txn.SubtotalIncl8,
			},
			{
				TaxRate:      enum.TaxRateStandard,
				SubtotalExcl: txn.SubtotalExcl10,
				TaxAmount:    txn.Tax10,
				SubtotalIncl: txn.SubtotalIncl10,
			},
		},
		TotalIncl: txn.TotalIncl,
	}
	if txn.TotalExcl != nil {
		s.TotalExcl = *txn.TotalExcl
	} else {
		s.TotalExcl = txn.SubtotalExcl8 + txn.SubtotalExcl10
	}
	return s
}
