package business

import (
	"github.com/iota-uz/pharma-admin/pkg/types"
)

var BusinessInfoLink = types.NavigationItem{
	Name: "Business info",
	Href: "/business/info",
}

var BrandInfoLink = types.NavigationItem{
	Name: "Brand info",
	Href: "/business/brand",
}

var ContactsLink = types.NavigationItem{
	Name: "Business contacts",
	Href: "/business/contacts",
}

var BusinessLink = types.NavigationItem{
	Name: "Business",
	Href: "/business",
	Children: []types.NavigationItem{
		BusinessInfoLink,
		BrandInfoLink,
		ContactsLink,
	},
}

var NavItems = []types.NavigationItem{
	BusinessLink,
}
