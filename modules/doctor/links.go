package doctor

import (
	"github.com/iota-uz/pharma-admin/pkg/types"
)

var DoctorsLink = types.NavigationItem{
	Name: "Doctors",
	Href: "/doctors",
}

var NavItems = []types.NavigationItem{
	DoctorsLink,
}
