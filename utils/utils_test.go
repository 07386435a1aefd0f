package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, 0, d.Hour())

	_, err = ParseDate("05/01/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	in, _ := ParseDate("2025-12-30")
	out, _ := ParseDate("2026-01-02")

	assert.Equal(t, 3, DaysBetween(in, out))
	assert.Equal(t, 0, DaysBetween(in, in))
	assert.Equal(t, -3, DaysBetween(out, in))
}

func TestAddDays(t *testing.T) {
	d, _ := ParseDate("2026-02-27")
	assert.Equal(t, "2026-03-01", FormatDate(AddDays(d, 2)))
}
