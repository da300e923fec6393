package stock

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRecord_Value(t *testing.T) {
	t.Parallel()

	r := Record{Quantity: 12, UnitPrice: decimal.RequireFromString("42.50")}
	require.Equal(t, "510", r.Value().String())
}

func TestRecord_LowStock(t *testing.T) {
	t.Parallel()

	require.True(t, Record{Quantity: 5, ReorderLevel: 5}.LowStock())
	require.False(t, Record{Quantity: 6, ReorderLevel: 5}.LowStock())
}

func TestRecord_Expiry(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		expiry  string
		within  bool
		expired bool
	}{
		{"2026-03-01", true, false},
		{"2026-03-31", true, false},
		{"2026-04-01", false, false},
		{"2026-02-28", false, true},
		{"", false, false},
		{"soon", false, false},
	}
	for _, tc := range cases {
		r := Record{ExpiryDate: tc.expiry}
		require.Equal(t, tc.within, r.ExpiresWithin(now, 30), tc.expiry)
		require.Equal(t, tc.expired, r.Expired(now), tc.expiry)
	}
}
