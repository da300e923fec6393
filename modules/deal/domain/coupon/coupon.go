package coupon

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/discount"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

// Coupon is a discount code customers type at checkout.
type Coupon struct {
	ID            restclient.ID   `json:"id"`
	Code          string          `json:"code"`
	DiscountType  discount.Type   `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	UsageLimit    int             `json:"usage_limit"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Status        bool            `json:"status"`
}

func (c Coupon) Validate() error {
	if c.ID.IsZero() {
		return errors.New("coupon record has no id")
	}
	return nil
}

func (c Coupon) Key() string { return c.ID.String() }

func (c Coupon) WithStatus(status bool) Coupon {
	c.Status = status
	return c
}
