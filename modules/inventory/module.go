package inventory

import (
	"time"

	"github.com/iota-uz/pharma-admin/modules/inventory/domain/stock"
	"github.com/iota-uz/pharma-admin/modules/inventory/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/inventory/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/inventory/presentation/controllers"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/spotlight"
)

type ModuleOptions struct {
	// Now is the clock expiry aggregates are measured against. Defaults to
	// time.Now.
	Now func() time.Time
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{options: opts}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	svc := crud.NewService[stock.Record]("Inventory record", restapi.NewInventoryResource(app.Client()), app.EventPublisher(), stock.Record.Key)
	app.RegisterServices(svc)
	app.RegisterScreens(controllers.NewInventoryScreen(app, svc, m.options.Now))
	app.RegisterNavItems(NavItems...)
	app.RegisterMocks(mockdata.RegisterMocks)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(InventoryLink.Name, InventoryLink.Href, "inventory list", "stock", "batches"),
	)
	return nil
}

func (m *Module) Name() string {
	return "inventory"
}
