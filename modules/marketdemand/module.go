package marketdemand

import (
	"github.com/iota-uz/pharma-admin/modules/marketdemand/domain/demand"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/presentation/controllers"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/spotlight"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	svc := crud.NewService[demand.MarketDemand]("Market demand", restapi.NewMarketDemandResource(app.Client()), app.EventPublisher(), demand.MarketDemand.Key)
	app.RegisterServices(svc)
	app.RegisterScreens(controllers.NewMarketDemandScreen(app, svc))
	app.RegisterNavItems(NavItems...)
	app.RegisterMocks(mockdata.RegisterMocks)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(MarketDemandLink.Name, MarketDemandLink.Href, "market-demands list"),
	)
	return nil
}

func (m *Module) Name() string {
	return "marketdemand"
}
