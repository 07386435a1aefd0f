package utils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"guesthouse-booking/types"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO date string into a date-only time value.
// Any time-of-day component is truncated so that interval arithmetic
// works on whole days.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return now.New(t).BeginningOfDay(), nil
}

// FormatDate renders a time value as an ISO date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the whole-day difference between two date-only
// values (checkout exclusive). Values carrying a time-of-day are
// truncated first.
func DaysBetween(from, to time.Time) int {
	from = now.New(from).BeginningOfDay()
	to = now.New(to).BeginningOfDay()
	return int(to.Sub(from).Hours() / 24)
}

// AddDays returns the date n days after t, date-only.
func AddDays(t time.Time, n int) time.Time {
	return now.New(t).BeginningOfDay().AddDate(0, 0, n)
}

// CreateLogEntry creates a deep-copied log entry for the async logger.
// Copies prevent fasthttp buffer reuse from corrupting the entry after
// the handler returns.
func CreateLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := string(append([]byte(nil), c.Body()...))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
