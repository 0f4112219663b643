package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalFixedOffset(t *testing.T) {
	got, err := ParseLocal("2024-01-01 08:59:59")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), got.UTC())
	_, offset := got.Zone()
	assert.Equal(t, 9*3600, offset)
}

func TestParseLocalRejectsOtherForms(t *testing.T) {
	for _, s := range []string{
		"2024-01-01T10:00:00",
		"2024-01-01 10:00",
		"2024/01/01 10:00:00",
		"2024-01-01 10:00:00+09:00",
		" 2024-01-01 10:00:00",
		"2024-13-01 10:00:00",
	} {
		_, err := ParseLocal(s)
		assert.Error(t, err, s)
	}
}

func TestFormatLocalRoundTrip(t *testing.T) {
	utc := time.Date(2024, 4, 30, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-05-01 00:30:00", FormatLocal(utc))
	assert.Equal(t, "20240501", BusinessDateOf(utc))

	back, err := LocalToUTC(FormatLocal(utc))
	require.NoError(t, err)
	assert.True(t, utc.Equal(back))
}
