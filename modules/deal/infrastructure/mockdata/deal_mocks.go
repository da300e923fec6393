// Package mockdata declares the deal collections on the development
// backend and seeds them.
package mockdata

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/coupon"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/deal"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/discount"
	"github.com/iota-uz/pharma-admin/modules/deal/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
)

// checkTerms mirrors the server-side pricing rules so the backend refuses
// what a client skipping validation would send.
func checkTerms(t discount.Type, value decimal.Decimal, start, end string) error {
	if t != discount.Percentage && t != discount.Flat {
		return &mockapi.Reject{Status: http.StatusBadRequest, Message: "discount_type must be percentage or flat"}
	}
	errs := discount.Terms{Type: t, Value: value.String(), StartDate: start, EndDate: end}.Check()
	for _, field := range []string{"DiscountValue", "EndDate"} {
		if msg, ok := errs[field]; ok {
			return &mockapi.Reject{Status: http.StatusUnprocessableEntity, Message: msg}
		}
	}
	return nil
}

func RegisterMocks(b *mockapi.Backend, seed bool) {
	mockapi.Register(b, restapi.DealResource, mockapi.CollectionOptions[deal.Deal]{
		Label: "Deal",
		Validate: func(d deal.Deal) error {
			if strings.TrimSpace(d.Title) == "" {
				return &mockapi.Reject{Status: http.StatusBadRequest, Message: "Deal title is required"}
			}
			return checkTerms(d.DiscountType, d.DiscountValue, d.StartDate, d.EndDate)
		},
	})
	mockapi.Register(b, restapi.CouponResource, mockapi.CollectionOptions[coupon.Coupon]{
		Label:  "Discount code",
		Unique: []string{"code"},
		Validate: func(c coupon.Coupon) error {
			if strings.TrimSpace(c.Code) == "" {
				return &mockapi.Reject{Status: http.StatusBadRequest, Message: "Code is required"}
			}
			return checkTerms(c.DiscountType, c.DiscountValue, c.StartDate, c.EndDate)
		},
	})
	if !seed {
		return
	}
	b.Seed(restapi.DealResource,
		mockapi.Record{
			"title": "Monsoon wellness week", "description": "Immunity boosters at a discount.",
			"discount_type": "percentage", "discount_value": "15", "start_date": "2024-07-01", "end_date": "2024-07-07",
			"applicabilities": []map[string]string{{"applies_to": "category", "reference": "Supplements"}},
			"conditions":      []map[string]string{{"kind": "min_order_value", "value": "499"}},
			"banner":          "", "status": true,
		},
		mockapi.Record{
			"title": "Flat 100 off diabetic care", "description": "",
			"discount_type": "flat", "discount_value": "100", "start_date": "2024-08-01", "end_date": "2024-08-31",
			"applicabilities": []map[string]string{{"applies_to": "all", "reference": ""}},
			"conditions":      []map[string]string{},
			"banner":          "", "status": false,
		},
	)
	b.Seed(restapi.CouponResource,
		mockapi.Record{
			"code": "WELCOME10", "discount_type": "percentage", "discount_value": "10", "min_order_value": "0",
			"usage_limit": 0, "start_date": "2024-01-01", "end_date": "2024-12-31", "status": true,
		},
		mockapi.Record{
			"code": "FLAT50", "discount_type": "flat", "discount_value": "50", "min_order_value": "300",
			"usage_limit": 500, "start_date": "2024-06-01", "end_date": "2024-06-30", "status": false,
		},
	)
}
