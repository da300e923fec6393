// Package discount holds the pricing rules deals and coupons share.
package discount

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/pkg/constants"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

type Type string

const (
	Percentage Type = "percentage"
	Flat       Type = "flat"
)

var hundred = decimal.NewFromInt(100)

// Terms is the part of a deal or coupon that decides how much is taken off
// and when.
type Terms struct {
	Type      Type
	Value     string
	StartDate string
	EndDate   string
}

// Check applies the rules that span several fields. Fields that fail their
// own format rule are skipped here.
func (t Terms) Check() serrors.ValidationErrors {
	errs := serrors.ValidationErrors{}
	if v, err := decimal.NewFromString(strings.TrimSpace(t.Value)); err == nil {
		switch {
		case !v.IsPositive():
			errs.Add("DiscountValue", "Discount value must be greater than 0")
		case t.Type == Percentage && v.GreaterThan(hundred):
			errs.Add("DiscountValue", "Percentage discount cannot exceed 100")
		}
	}
	start, errStart := constants.ParseDate(t.StartDate)
	end, errEnd := constants.ParseDate(t.EndDate)
	if errStart == nil && errEnd == nil && end.Before(start) {
		errs.Add("EndDate", "End date cannot be before start date")
	}
	return errs
}

// Describe renders a percentage as "15%" and a flat amount through money.
func Describe(t Type, value decimal.Decimal, money func(decimal.Decimal) string) string {
	if t == Percentage {
		return value.String() + "%"
	}
	return money(value)
}
