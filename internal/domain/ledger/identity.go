package ledger

import (
	"errors"
	"regexp"
	"strings"
)

// IDSeparator joins the business date and receipt number. It is part of the
// persisted identifier format and must never change.
const IDSeparator = "_"

var (
	// ErrInvalidBusinessDate is returned for date literals that are neither
	// yyyymmdd nor start with YYYY-MM-DD.
	ErrInvalidBusinessDate = errors.New("date must be YYYY-MM-DD")

	receiptUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	compactDate   = regexp.MustCompile(`^\d{8}$`)
	dashedDate    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// SanitizeReceiptNo trims the receipt number and replaces every character
// outside [A-Za-z0-9_-] with an underscore.
func SanitizeReceiptNo(receiptNo string) string {
	return receiptUnsafe.ReplaceAllString(strings.TrimSpace(receiptNo), "_")
}

// BusinessDate normalizes a date literal to yyyymmdd. Accepted forms are an
// 8-digit date or anything whose first 10 characters are YYYY-MM-DD (a plain
// date or a local-civil timestamp).
func BusinessDate(literal string) (string, error) {
	literal = strings.TrimSpace(literal)
	if compactDate.MatchString(literal) {
		return literal, nil
	}
	if len(literal) < 10 || !dashedDate.MatchString(literal[:10]) {
		return "", ErrInvalidBusinessDate
	}
	return strings.ReplaceAll(literal[:10], "-", ""), nil
}

// DeriveTransactionID computes the identifier shared by the write and read
// paths: yyyymmdd + IDSeparator + sanitized receipt number.
func DeriveTransactionID(businessDateLiteral, receiptNo string) (string, error) {
	date, err := BusinessDate(businessDateLiteral)
	if err != nil {
		return "", err
	}
	return date + IDSeparator + SanitizeReceiptNo(receiptNo), nil
}
