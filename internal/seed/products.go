package seed

import (
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/domain/enum"
	"golang.org/x/text/encoding"
)

// Product master column headers
const (
	ColProductCode     = "商品コード"
	ColProductCategory = "商品分類"
	ColProductName     = "商品名"
	ColPosCost         = "POS原価"
	ColPriceExcl       = "売価（抜）"
	ColTaxRate         = "税率"
)

var productCodePattern = regexp.MustCompile(`^\d{1,13}$`)

// ParseProductsCSV reads a product master CSV in the given encoding.
func ParseProductsCSV(r io.Reader, enc encoding.Encoding) ([]entity.Product, *Report, error) {
	t, err := readCSV(r, enc)
	if err != nil {
		return nil, nil, err
	}
	return parseProducts(t)
}

// ParseProductsXLSX reads a product master from the first sheet of a workbook.
func ParseProductsXLSX(r io.Reader) ([]entity.Product, *Report, error) {
	t, err := readXLSX(r)
	if err != nil {
		return nil, nil, err
	}
	return parseProducts(t)
}

// parseProducts keeps the last row for each product code so that a batch
// upsert behaves like sequential replaces.
func parseProducts(t *table) ([]entity.Product, *Report, error) {
	if err := t.require(ColProductCode, ColProductName, ColPriceExcl, ColTaxRate); err != nil {
		return nil, nil, err
	}

	report := &Report{}
	index := make(map[string]int)
	var products []entity.Product

	for i, row := range t.rows {
		line := i + 2
		report.Rows++

		code := t.get(row, ColProductCode)
		if !productCodePattern.MatchString(code) {
			report.skip(line, "invalid product code %q", code)
			continue
		}
		name := t.get(row, ColProductName)
		if name == "" {
			report.skip(line, "empty product name")
			continue
		}
		price, ok := ParseAmount(t.get(row, ColPriceExcl))
		if !ok {
			report.skip(line, "invalid price %q", t.get(row, ColPriceExcl))
			continue
		}
		rate, ok := ParseTaxRate(t.get(row, ColTaxRate))
		if !ok {
			report.skip(line, "invalid tax rate %q", t.get(row, ColTaxRate))
			continue
		}

		p := entity.Product{
			ProductCode:     code,
			ProductCategory: t.get(row, ColProductCategory),
			ProductName:     name,
			PriceExcl:       price,
			TaxRate:         rate,
		}
		if cost, ok := ParseAmount(t.get(row, ColPosCost)); ok {
			p.PosCost = &cost
		}

		if at, seen := index[code]; seen {
			products[at] = p
		} else {
			index[code] = len(products)
			products = append(products, p)
		}
		report.Accepted++
	}

	return products, report, nil
}

// ParseAmount reads a yen amount such as "1,280" or "98.0", truncating any
// fraction. Empty or non-numeric input yields false.
func ParseAmount(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}

// ParseTaxRate accepts the spellings found in product masters: 8, 8%,
// 0.08, 8.0 and the same forms of 10.
func ParseTaxRate(s string) (enum.TaxRate, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, false
	case "8", "8%", "0.08", "0.080", "8.0":
		return enum.TaxRateReduced, true
	case "10", "10%", "0.1", "0.10", "0.100", "10.0":
		return enum.TaxRateStandard, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	switch {
	case f == 8 || math.Abs(f-0.08) < 1e-9:
		return enum.TaxRateReduced, true
	case f == 10 || math.Abs(f-0.10) < 1e-9:
		return enum.TaxRateStandard, true
	}
	return 0, false
}
