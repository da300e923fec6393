package inventory

import (
	"github.com/iota-uz/pharma-admin/pkg/types"
)

var InventoryLink = types.NavigationItem{
	Name: "Inventory",
	Href: "/inventory",
}

var NavItems = []types.NavigationItem{
	InventoryLink,
}
