package seed

import (
	"io"

	"github.com/sangkips/posledger/internal/domain/entity"
	"golang.org/x/text/encoding"
)

// ColCashierName is the only column read from a cashier list
const ColCashierName = "cashier_name"

// ParseCashiersCSV reads a cashier list CSV in the given encoding.
func ParseCashiersCSV(r io.Reader, enc encoding.Encoding) ([]entity.Cashier, *Report, error) {
	t, err := readCSV(r, enc)
	if err != nil {
		return nil, nil, err
	}
	return parseCashiers(t)
}

// ParseCashiersXLSX reads a cashier list from the first sheet of a workbook.
func ParseCashiersXLSX(r io.Reader) ([]entity.Cashier, *Report, error) {
	t, err := readXLSX(r)
	if err != nil {
		return nil, nil, err
	}
	return parseCashiers(t)
}

func parseCashiers(t *table) ([]entity.Cashier, *Report, error) {
	if err := t.require(ColCashierName); err != nil {
		return nil, nil, err
	}

	report := &Report{}
	seen := make(map[string]bool)
	var cashiers []entity.Cashier

	for i, row := range t.rows {
		report.Rows++
		name := t.get(row, ColCashierName)
		if name == "" {
			report.skip(i+2, "empty cashier name")
			continue
		}
		if seen[name] {
			report.skip(i+2, "duplicate cashier %q", name)
			continue
		}
		seen[name] = true
		cashiers = append(cashiers, entity.Cashier{CashierName: name})
		report.Accepted++
	}

	return cashiers, report, nil
}
