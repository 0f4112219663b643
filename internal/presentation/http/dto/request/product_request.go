package request

import (
	"strings"

	"github.com/sangkips/posledger/pkg/apperror"
)

// ProductLookup is the query of a product master lookup.
type ProductLookup struct {
	Code string `form:"code"`
}

func (r *ProductLookup) Normalize() error {
	r.Code = strings.TrimSpace(r.Code)
	if r.Code == "" {
		return apperror.NewBadRequestError("code is required")
	}
	if !IsProductCode(r.Code) {
		return apperror.NewBadRequestError("code must be 1-13 digits")
	}
	return nil
}
