package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeReceiptNo(t *testing.T) {
	cases := map[string]string{
		"R-0001":      "R-0001",
		" A/1 ":       "A_1",
		"A 1":         "A_1",
		"レシート1":       "____1",
		"x.y#z":       "x_y_z",
		"keep_under-": "keep_under-",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeReceiptNo(in), in)
	}
}

func TestBusinessDate(t *testing.T) {
	for _, in := range []string{"20240501", "2024-05-01", "2024-05-01 10:15:00", " 2024-05-01 "} {
		got, err := BusinessDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, "20240501", got, in)
	}
	for _, in := range []string{"", "2024-5-1", "May 1", "2024050", "2024/05/01"} {
		_, err := BusinessDate(in)
		assert.ErrorIs(t, err, ErrInvalidBusinessDate, in)
	}
}

func TestDeriveTransactionIDIsShared(t *testing.T) {
	written, err := DeriveTransactionID("2024-05-01 10:15:00", "A/1")
	require.NoError(t, err)
	looked, err := DeriveTransactionID("2024-05-01", "A/1")
	require.NoError(t, err)

	assert.Equal(t, "20240501_A_1", written)
	assert.Equal(t, written, looked)

	// collapsing characters collide by construction
	other, err := DeriveTransactionID("20240501", "A_1")
	require.NoError(t, err)
	assert.Equal(t, written, other)

	again, _ := DeriveTransactionID("2024-05-01 10:15:00", "A/1")
	assert.Equal(t, written, again)
}
