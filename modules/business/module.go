package business

import (
	"github.com/iota-uz/pharma-admin/modules/business/domain/brandinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/businessinfo"
	"github.com/iota-uz/pharma-admin/modules/business/domain/contact"
	"github.com/iota-uz/pharma-admin/modules/business/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/business/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/business/presentation/controllers"
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
	bus := app.EventPublisher()
	infoService := crud.NewService[businessinfo.BusinessInfo](
		"Business info", restapi.NewBusinessInfoResource(app.Client()), bus, businessinfo.BusinessInfo.Key,
	)
	brandService := crud.NewService[brandinfo.BrandInfo](
		"Brand info", restapi.NewBrandInfoResource(app.Client()), bus, brandinfo.BrandInfo.Key,
	)
	contactService := crud.NewService[contact.BusinessContact](
		"Business contact", restapi.NewBusinessContactResource(app.Client()), bus, contact.BusinessContact.Key,
	)
	app.RegisterServices(infoService, brandService, contactService)
	app.RegisterScreens(
		controllers.NewBusinessInfoScreen(app, infoService),
		controllers.NewBrandInfoScreen(app, brandService),
		controllers.NewContactScreen(app, contactService),
	)
	app.RegisterNavItems(NavItems...)
	app.RegisterMocks(mockdata.RegisterMocks)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(BusinessInfoLink.Name, BusinessInfoLink.Href, "business-info list"),
		spotlight.NewQuickLink(BrandInfoLink.Name, BrandInfoLink.Href, "brand-info list"),
		spotlight.NewQuickLink(ContactsLink.Name, ContactsLink.Href, "business-contacts list"),
	)
	return nil
}

func (m *Module) Name() string {
	return "business"
}
