package mapping

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/pkg/constants"
)

// MapViewModels converts entities to view models.
func MapViewModels[T any, V any](entities []T, mapFunc func(T) V) []V {
	viewModels := make([]V, len(entities))
	for i, entity := range entities {
		viewModels[i] = mapFunc(entity)
	}
	return viewModels
}

// Money renders amount in currency with its symbol and grouping, e.g.
// "$1,234.50". Unknown currencies fall back to the plain amount.
func Money(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Or returns the first non-empty string.
func Or(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Published renders a publish flag.
func Published(status bool) string {
	if status {
		return "Published"
	}
	return "Unpublished"
}

// Date renders any date constants.ParseDate understands as 2006-01-02, leaving
// unparseable input as it is.
func Date(s string) string {
	t, err := constants.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}
