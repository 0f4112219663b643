// Package seed loads product and cashier reference data from the
// spreadsheet exports kept by the store, usually cp932 CSV files.
package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Skip records one input row that was not imported.
type Skip struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Report summarizes one import run.
type Report struct {
	Rows     int    `json:"rows"`
	Accepted int    `json:"accepted"`
	Skipped  []Skip `json:"skipped,omitempty"`
}

func (r *Report) skip(line int, format string, args ...interface{}) {
	r.Skipped = append(r.Skipped, Skip{Line: line, Reason: fmt.Sprintf(format, args...)})
}

// Encoding returns the text encoding for name. UTF-8 input has its byte
// order mark removed.
func Encoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cp932", "windows-31j", "shift_jis", "shift-jis", "sjis":
		return japanese.ShiftJIS, nil
	case "euc-jp":
		return japanese.EUCJP, nil
	case "utf-8", "utf8", "":
		return unicode.UTF8BOM, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// table is a header-addressed view over the non-blank rows of an input.
// Reported line numbers count non-blank rows, header included.
type table struct {
	columns map[string]int
	rows    [][]string
}

func (t *table) get(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func newTable(records [][]string) (*table, error) {
	// drop blank rows, spreadsheets keep plenty of them
	var rows [][]string
	for _, rec := range records {
		if !isBlank(rec) {
			rows = append(rows, rec)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}

	t := &table{columns: make(map[string]int, len(rows[0])), rows: rows[1:]}
	for i, name := range rows[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := t.columns[name]; !dup {
			t.columns[name] = i
		}
	}
	return t, nil
}

func (t *table) require(columns ...string) error {
	for _, c := range columns {
		if _, ok := t.columns[c]; !ok {
			return fmt.Errorf("missing column %q", c)
		}
	}
	return nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readCSV decodes r with enc and returns every record.
func readCSV(r io.Reader, enc encoding.Encoding) (*table, error) {
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return newTable(records)
}

// readXLSX returns the rows of the first sheet of an .xlsx workbook.
func readXLSX(r io.Reader) (*table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return newTable(records)
}
