package restapi

import (
	"github.com/iota-uz/pharma-admin/modules/deal/domain/coupon"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/deal"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

const (
	DealResource   = "deal"
	CouponResource = "discount-code"
)

func NewDealResource(c *restclient.Client) *restclient.Resource[deal.Deal] {
	return restclient.NewResource[deal.Deal](c, DealResource)
}

func NewCouponResource(c *restclient.Client) *restclient.Resource[coupon.Coupon] {
	return restclient.NewResource[coupon.Coupon](c, CouponResource)
}
