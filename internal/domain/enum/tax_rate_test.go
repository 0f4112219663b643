package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaxRate(t *testing.T) {
	for _, n := range []int64{8, 10} {
		rate, ok := ParseTaxRate(n)
		assert.True(t, ok)
		assert.EqualValues(t, n, rate)
	}
	for _, n := range []int64{0, 5, 7, 9, 11, -8} {
		_, ok := ParseTaxRate(n)
		assert.False(t, ok, n)
	}
}

func TestTaxRateJSON(t *testing.T) {
	data, err := json.Marshal(TaxRateReduced)
	require.NoError(t, err)
	assert.Equal(t, "8", string(data))

	var rate TaxRate
	require.NoError(t, json.Unmarshal([]byte("10"), &rate))
	assert.Equal(t, TaxRateStandard, rate)

	assert.Error(t, json.Unmarshal([]byte("7"), &rate))
}

func TestTaxRateScan(t *testing.T) {
	var rate TaxRate
	require.NoError(t, rate.Scan(int64(8)))
	assert.Equal(t, TaxRateReduced, rate)

	require.NoError(t, rate.Scan([]byte("10")))
	assert.Equal(t, TaxRateStandard, rate)

	assert.Error(t, rate.Scan(3.5))
	assert.Equal(t, "10%", TaxRateStandard.String())
}
