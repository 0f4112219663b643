package request

import (
	"regexp"
	"strings"

	"github.com/sangkips/posledger/pkg/apperror"
)

var receiptDatePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}|\d{8})$`)

// ReceiptLookup identifies one stored transaction by its business date and
// receipt number. It binds from the query string or a JSON body.
type ReceiptLookup struct {
	Date      string `form:"date" json:"date"`
	ReceiptNo string `form:"receipt_no" json:"receipt_no"`
}

// Normalize trims both fields and checks that they are usable.
func (r *ReceiptLookup) Normalize() error {
	r.Date = strings.TrimSpace(r.Date)
	r.ReceiptNo = strings.TrimSpace(r.ReceiptNo)

	if r.Date == "" || r.ReceiptNo == "" {
		return apperror.NewBadRequestError("date and receipt_no are required")
	}
	if !receiptDatePattern.MatchString(r.Date) {
		return apperror.NewBadRequestError("date must be YYYY-MM-DD")
	}
	return nil
}
