package deal

import (
	"github.com/iota-uz/pharma-admin/modules/deal/domain/coupon"
	"github.com/iota-uz/pharma-admin/modules/deal/domain/deal"
	"github.com/iota-uz/pharma-admin/modules/deal/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/deal/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/deal/presentation/controllers"
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
	dealService := crud.NewService[deal.Deal]("Deal", restapi.NewDealResource(app.Client()), app.EventPublisher(), deal.Deal.Key)
	couponService := crud.NewService[coupon.Coupon]("Discount code", restapi.NewCouponResource(app.Client()), app.EventPublisher(), coupon.Coupon.Key)
	app.RegisterServices(dealService, couponService)
	app.RegisterScreens(
		controllers.NewDealScreen(app, dealService),
		controllers.NewCouponScreen(app, couponService),
	)
	app.RegisterNavItems(NavItems...)
	app.RegisterMocks(mockdata.RegisterMocks)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(DealsLink.Name, DealsLink.Href, "deals list", "offers", "promotions"),
		spotlight.NewQuickLink(CouponsLink.Name, CouponsLink.Href, "discount-codes list", "coupons", "promo codes"),
	)
	return nil
}

func (m *Module) Name() string {
	return "deal"
}
