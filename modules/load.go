package modules

import (
	"slices"

	"github.com/iota-uz/pharma-admin/modules/agent"
	"github.com/iota-uz/pharma-admin/modules/business"
	"github.com/iota-uz/pharma-admin/modules/deal"
	"github.com/iota-uz/pharma-admin/modules/doctor"
	"github.com/iota-uz/pharma-admin/modules/inventory"
	"github.com/iota-uz/pharma-admin/modules/marketdemand"
	"github.com/iota-uz/pharma-admin/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		doctor.NewModule(),
		business.NewModule(),
		deal.NewModule(),
		agent.NewModule(),
		marketdemand.NewModule(),
		inventory.NewModule(nil),
	}

	NavLinks = slices.Concat(
		doctor.NavItems,
		business.NavItems,
		deal.NavItems,
		agent.NavItems,
		marketdemand.NavItems,
		inventory.NavItems,
	)
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
