package request

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sangkips/posledger/pkg/apperror"
)

// RegisterTransactionRequest is the wire form of a transaction submission.
// Scalars are decoded untyped so that type errors are reported per field
// instead of failing the whole body.
type RegisterTransactionRequest struct {
	ReceiptNo       interface{} `json:"receipt_no"`
	RegisteredAt    interface{} `json:"registered_at"`
	RegisteredAtJST interface{} `json:"registered_at_jst"`
	CashierName     interface{} `json:"cashier_name"`
	Items           interface{} `json:"items"`
}

// RegisterTransaction is the typed, validated submission.
type RegisterTransaction struct {
	ReceiptNo    string            `json:"receipt_no" validate:"required"`
	RegisteredAt string            `json:"registered_at" validate:"required,localtime"`
	CashierName  string            `json:"cashier_name" validate:"required"`
	Items        []TransactionItem `json:"items" validate:"required,min=1,dive"`
}

// TransactionItem is one typed, validated line of a submission.
type TransactionItem struct {
	ProductCode     string  `json:"product_code" validate:"required,productcode"`
	ProductCategory *string `json:"product_category"`
	ProductName     string  `json:"product_name" validate:"required"`
	PosCost         *int64  `json:"pos_cost" validate:"omitempty,max=1000000000000"`
	PriceExcl       int64   `json:"price_excl" validate:"min=0,max=1000000000000"`
	Qty             int64   `json:"qty" validate:"min=1,max=1000000"`
	TaxRate         int64   `json:"tax_rate" validate:"taxrate"`
}

// DecodeRegisterTransaction reads a JSON body, keeping numbers exact.
func DecodeRegisterTransaction(r io.Reader) (*RegisterTransactionRequest, error) {
	var req RegisterTransactionRequest
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return nil, apperror.ErrInvalidJSON
	}
	return &req, nil
}

// Validate coerces the wire form into a RegisterTransaction and checks every
// constraint. Either the typed value or the field errors are returned.
func (r *RegisterTransactionRequest) Validate() (*RegisterTransaction, []apperror.FieldError) {
	var errs fieldErrors

	registeredAt := r.RegisteredAt
	if registeredAt == nil {
		registeredAt = r.RegisteredAtJST
	}

	out := &RegisterTransaction{
		ReceiptNo:    errs.nonEmptyString(r.ReceiptNo, "receipt_no"),
		RegisteredAt: errs.nonEmptyString(registeredAt, "registered_at"),
		CashierName:  errs.nonEmptyString(r.CashierName, "cashier_name"),
	}

	rawItems, ok := r.Items.([]interface{})
	if !ok || len(rawItems) == 0 {
		errs.add("items", "must be a non-empty array")
	}
	for idx, raw := range rawItems {
		field := fmt.Sprintf("items[%d]", idx)
		obj, ok := raw.(map[string]interface{})
		if !ok {
			errs.add(field, "must be an object")
			continue
		}
		out.Items = append(out.Items, errs.item(obj, field))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if fe := validateStruct(out); len(fe) > 0 {
		return nil, fe
	}
	return out, nil
}

func (e *fieldErrors) item(obj map[string]interface{}, field string) TransactionItem {
	it := TransactionItem{
		ProductCode: e.nonEmptyString(obj["product_code"], field+".product_code"),
		ProductName: e.nonEmptyString(obj["product_name"], field+".product_name"),
		PriceExcl:   e.integer(obj["price_excl"], field+".price_excl"),
		Qty:         e.integer(obj["qty"], field+".qty"),
		TaxRate:     e.integer(obj["tax_rate"], field+".tax_rate"),
	}
	if category, ok := obj["product_category"].(string); ok {
		it.ProductCategory = &category
	}
	if v, present := obj["pos_cost"]; present && v != nil {
		cost := e.integer(v, field+".pos_cost")
		it.PosCost = &cost
	}
	return it
}

type fieldErrors []apperror.FieldError

func (e *fieldErrors) add(field, message string) {
	*e = append(*e, apperror.FieldError{Field: field, Message: message})
}

// nonEmptyString returns the trimmed string or records "is required"
func (e *fieldErrors) nonEmptyString(v interface{}, field string) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		e.add(field, "is required")
		return ""
	}
	return strings.TrimSpace(s)
}

// integer accepts JSON numbers with an integral value, e.g. 3 or 3.0
func (e *fieldErrors) integer(v interface{}, field string) int64 {
	num, ok := v.(json.Number)
	if !ok {
		e.add(field, "must be an integer")
		return 0
	}
	if n, err := num.Int64(); err == nil {
		return n
	}
	f, err := num.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		e.add(field, "must be an integer")
		return 0
	}
	return int64(f)
}
