package controllers

import (
	"strconv"

	"github.com/iota-uz/pharma-admin/modules/deal/domain/coupon"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
)

const (
	CouponsRoute    = "/discount-codes"
	CouponFormRoute = "/discount-codes/form"
)

type CouponScreen = crud.Binding[coupon.Coupon, dtos.CouponForm, bool, viewmodels.Coupon]

func NewCouponScreen(app application.Application, svc *crud.Service[coupon.Coupon]) *CouponScreen {
	return &CouponScreen{
		Key:      "discount-codes",
		Label:    "Discount codes",
		ListPath: CouponsRoute,
		Form: &crud.FormConfig[coupon.Coupon, dtos.CouponForm]{
			Resource:   "Discount code",
			ListRoute:  CouponsRoute,
			Store:      svc,
			FromRecord: dtos.CouponFormFrom,
			Surface:    app.Surface(),
			Logger:     app.Logger(),
		},
		Lister: crud.ListConfig[coupon.Coupon, bool, viewmodels.Coupon]{
			Resource:  "Discount code",
			FormRoute: CouponFormRoute,
			Store:     svc,
			Access: crud.Accessor[coupon.Coupon, bool]{
				ID:         coupon.Coupon.Key,
				Status:     func(c coupon.Coupon) bool { return c.Status },
				WithStatus: coupon.Coupon.WithStatus,
			},
			ToView:   mappers.CouponToViewModel(app.Config().Currency),
			Search:   func(c coupon.Coupon) []string { return []string{c.Code} },
			Category: func(c coupon.Coupon) string { return string(c.DiscountType) },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: crud.ParseBoolStatus,
		Statuses:    crud.BoolStatuses,
		Summarize: func(rows []coupon.Coupon) crud.Summary {
			limited := crud.Count(rows, func(c coupon.Coupon) bool { return c.UsageLimit > 0 })
			return crud.Summary{
				Stats: []crud.Stat{
					{Label: "Published", Value: strconv.Itoa(crud.Count(rows, func(c coupon.Coupon) bool { return c.Status }))},
					{Label: "Usage limited", Value: strconv.Itoa(limited)},
				},
				Series: []crud.Series{
					{Name: "By discount type", Points: crud.GroupCount(rows, func(c coupon.Coupon) string { return string(c.DiscountType) })},
				},
			}
		},
	}
}
