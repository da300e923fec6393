package deal

import (
	"github.com/iota-uz/pharma-admin/pkg/types"
)

var DealsLink = types.NavigationItem{
	Name: "Deals",
	Href: "/deals",
}

var CouponsLink = types.NavigationItem{
	Name: "Discount codes",
	Href: "/discount-codes",
}

var PromotionsLink = types.NavigationItem{
	Name: "Promotions",
	Href: "/deals",
	Children: []types.NavigationItem{
		DealsLink,
		CouponsLink,
	},
}

var NavItems = []types.NavigationItem{
	PromotionsLink,
}
