package marketdemand

import (
	"github.com/iota-uz/pharma-admin/pkg/types"
)

var MarketDemandLink = types.NavigationItem{
	Name: "Market demand",
	Href: "/market-demands",
}

var NavItems = []types.NavigationItem{
	MarketDemandLink,
}
