package mappers

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/coupon"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/deal"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/discount"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/mapping"
)

func DealToViewModel(currency string, assetURL func(string) string) func(deal.Deal) viewmodels.Deal {
	money := func(d decimal.Decimal) string { return mapping.Money(d, currency) }
	return func(d deal.Deal) viewmodels.Deal {
		targets := make([]string, 0, len(d.Applicabilities))
		for _, a := range d.Applicabilities {
			if a.Reference == "" {
				targets = append(targets, a.AppliesTo)
				continue
			}
			targets = append(targets, a.AppliesTo+": "+a.Reference)
		}
		banner := ""
		if d.Banner != "" {
			banner = assetURL(d.Banner)
		}
		return viewmodels.Deal{
			ID:              d.ID.String(),
			Title:           d.Title,
			Discount:        discount.Describe(d.DiscountType, d.DiscountValue, money),
			StartDate:       mapping.Date(d.StartDate),
			EndDate:         mapping.Date(d.EndDate),
			Applicabilities: mapping.Or(strings.Join(targets, "; "), "all"),
			Conditions:      len(d.Conditions),
			BannerURL:       banner,
			Status:          mapping.Published(d.Status),
		}
	}
}

func CouponToViewModel(currency string) func(coupon.Coupon) viewmodels.Coupon {
	money := func(d decimal.Decimal) string { return mapping.Money(d, currency) }
	return func(c coupon.Coupon) viewmodels.Coupon {
		limit := "Unlimited"
		if c.UsageLimit > 0 {
			limit = strconv.Itoa(c.UsageLimit)
		}
		return viewmodels.Coupon{
			ID:            c.ID.String(),
			Code:          c.Code,
			Discount:      discount.Describe(c.DiscountType, c.DiscountValue, money),
			MinOrderValue: money(c.MinOrderValue),
			UsageLimit:    limit,
			StartDate:     mapping.Date(c.StartDate),
			EndDate:       mapping.Date(c.EndDate),
			Status:        mapping.Published(c.Status),
		}
	}
}
