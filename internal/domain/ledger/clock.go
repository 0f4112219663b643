// Package ledger holds the pure rules of the receipt ledger: the fixed-offset
// civil clock, transaction identity and per-rate tax aggregation.
package ledger

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// LocalOffset is the register's civil time offset from UTC. It is a fixed
// offset with no daylight-saving rule.
const LocalOffset = 9 * time.Hour

// LocalLayout is the only accepted form of a local-civil timestamp.
const LocalLayout = "2006-01-02 15:04:05"

var (
	localZone      = time.FixedZone("JST", int(LocalOffset/time.Second))
	localPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	errLocalFormat = errors.New("must be 'YYYY-MM-DD HH:MM:SS'")
)

// LocalZone returns the fixed zone used for every civil conversion.
func LocalZone() *time.Location {
	return localZone
}

// ParseLocal parses a "YYYY-MM-DD HH:MM:SS" literal in the fixed local zone.
func ParseLocal(s string) (time.Time, error) {
	if !localPattern.MatchString(s) {
		return time.Time{}, errLocalFormat
	}
	t, err := time.ParseInLocation(LocalLayout, s, localZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be a valid datetime: %w", err)
	}
	return t, nil
}

// FormatLocal renders t as a local-civil literal.
func FormatLocal(t time.Time) string {
	return t.In(localZone).Format(LocalLayout)
}

// LocalToUTC converts a local-civil literal to its UTC instant.
func LocalToUTC(s string) (time.Time, error) {
	t, err := ParseLocal(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// BusinessDateOf returns the yyyymmdd of t on the local calendar.
func BusinessDateOf(t time.Time) string {
	return t.In(localZone).Format("20060102")
}
