package stock

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/pkg/constants"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

// Record is one batch of a product held in stock.
type Record struct {
	ID           restclient.ID   `json:"id"`
	ProductName  string          `json:"product_name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	BatchNumber  string          `json:"batch_number"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int             `json:"reorder_level"`
	ExpiryDate   string          `json:"expiry_date"`
	Report       string          `json:"report"`
	Status       bool            `json:"status"`
}

func (r Record) Validate() error {
	if r.ID.IsZero() {
		return errors.New("inventory record has no id")
	}
	if r.Quantity < 0 {
		return errors.Errorf("inventory record %s has negative quantity", r.ID)
	}
	return nil
}

func (r Record) Key() string { return r.ID.String() }

func (r Record) WithStatus(status bool) Record {
	r.Status = status
	return r
}

// Value is quantity times unit price.
func (r Record) Value() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

func (r Record) LowStock() bool {
	return r.Quantity <= r.ReorderLevel
}

// Expiry parses ExpiryDate. The second result is false when it is blank or
// unparseable.
func (r Record) Expiry() (time.Time, bool) {
	if r.ExpiryDate == "" {
		return time.Time{}, false
	}
	t, err := constants.ParseDate(r.ExpiryDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Expired reports whether the batch expired before the day of now.
func (r Record) Expired(now time.Time) bool {
	exp, ok := r.Expiry()
	return ok && exp.Before(startOfDay(now))
}

// ExpiresWithin reports whether the batch is still good today but expires
// within the given number of days.
func (r Record) ExpiresWithin(now time.Time, days int) bool {
	exp, ok := r.Expiry()
	if !ok {
		return false
	}
	today := startOfDay(now)
	return !exp.Before(today) && !exp.After(today.AddDate(0, 0, days))
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
