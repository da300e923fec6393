package constants

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate reads a date as entered in India: ISO 2025-04-10, or slash and
// dash forms read day first, so 10/04/2025 is 10 April. Dates without a zone
// are UTC.
func ParseDate(s string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(s), time.UTC, dateparse.PreferMonthFirst(false))
}
