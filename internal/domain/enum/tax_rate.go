package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// TaxRate is a consumption tax rate in whole percent
type TaxRate int

const (
	TaxRateReduced  TaxRate = 8
	TaxRateStandard TaxRate = 10
)

// TaxRates lists the supported rates in receipt order
func TaxRates() []TaxRate {
	return []TaxRate{TaxRateReduced, TaxRateStandard}
}

// ParseTaxRate returns the rate for n, or false if n is not a supported rate
func ParseTaxRate(n int64) (TaxRate, bool) {
	switch TaxRate(n) {
	case TaxRateReduced, TaxRateStandard:
		return TaxRate(n), true
	}
	return 0, false
}

func (t TaxRate) IsValid() bool {
	_, ok := ParseTaxRate(int64(t))
	return ok
}

func (t TaxRate) String() string {
	return strconv.Itoa(int(t)) + "%"
}

func (t TaxRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(t))
}

func (t *TaxRate) UnmarshalJSON(data []byte) error {
	var i int64
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	rate, ok := ParseTaxRate(i)
	if !ok {
		return fmt.Errorf("unsupported tax rate %d", i)
	}
	*t = rate
	return nil
}

func (t TaxRate) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TaxRate) Scan(value interface{}) error {
	if value == nil {
		*t = 0
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TaxRate(v)
	case int:
		*t = TaxRate(v)
	case int32:
		*t = TaxRate(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("scan tax rate: %w", err)
		}
		*t = TaxRate(n)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("scan tax rate: %w", err)
		}
		*t = TaxRate(n)
	default:
		return fmt.Errorf("scan tax rate: unsupported type %T", value)
	}
	return nil
}
