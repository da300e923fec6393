package crud

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Point is one bar or slice of a chart series.
type Point struct {
	Label string
	Value decimal.Decimal
}

func Count[T any](rows []T, pred func(T) bool) int {
	n := 0
	for _, r := range rows {
		if pred(r) {
			n++
		}
	}
	return n
}

func Sum[T any](rows []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(value(r))
	}
	return total
}

// GroupCount counts rows per label. The series is ordered by label.
func GroupCount[T any](rows []T, label func(T) string) []Point {
	return GroupSum(rows, label, func(T) decimal.Decimal { return decimal.NewFromInt(1) })
}

// GroupSum sums value per label. Blank labels are grouped as "Other".
func GroupSum[T any](rows []T, label func(T) string, value func(T) decimal.Decimal) []Point {
	totals := map[string]decimal.Decimal{}
	for _, r := range rows {
		l := label(r)
		if l == "" {
			l = "Other"
		}
		totals[l] = totals[l].Add(value(r))
	}
	series := make([]Point, 0, len(totals))
	for l, v := range totals {
		series = append(series, Point{Label: l, Value: v})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Label < series[j].Label })
	return series
}
