package agent

import (
	"github.com/iota-uz/pharma-admin/pkg/types"
)

var AgentsLink = types.NavigationItem{
	Name: "Agents",
	Href: "/agents",
}

var NavItems = []types.NavigationItem{
	AgentsLink,
}
