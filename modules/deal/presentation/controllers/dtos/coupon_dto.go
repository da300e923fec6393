package dtos

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/coupon"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/discount"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

type CouponForm struct {
	Code          string        `json:"code" validate:"required,couponcode"`
	DiscountType  discount.Type `json:"discount_type" validate:"required,oneof=percentage flat"`
	DiscountValue string        `json:"discount_value" validate:"required,decimal"`
	MinOrderValue string        `json:"min_order_value" validate:"omitempty,decimal"`
	UsageLimit    int           `json:"usage_limit" validate:"gte=0"`
	StartDate     string        `json:"start_date" validate:"required,date"`
	EndDate       string        `json:"end_date" validate:"required,date"`
	Status        bool          `json:"status"`
}

func (f *CouponForm) Normalize() {
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
	f.DiscountType = discount.Type(strings.ToLower(strings.TrimSpace(string(f.DiscountType))))
	f.DiscountValue = strings.TrimSpace(f.DiscountValue)
	f.MinOrderValue = strings.TrimSpace(f.MinOrderValue)
	if f.MinOrderValue == "" {
		f.MinOrderValue = "0"
	}
}

func (f *CouponForm) CrossCheck() serrors.ValidationErrors {
	return discount.Terms{
		Type:      f.DiscountType,
		Value:     f.DiscountValue,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}.Check()
}

func CouponFormFrom(c coupon.Coupon) CouponForm {
	return CouponForm{
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue.String(),
		MinOrderValue: c.MinOrderValue.String(),
		UsageLimit:    c.UsageLimit,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Status:        c.Status,
	}
}
