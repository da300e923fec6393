package doctor

import (
	"github.com/iota-uz/pharma-admin/modules/doctor/domain/doctor"
	"github.com/iota-uz/pharma-admin/modules/doctor/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/doctor/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/doctor/presentation/controllers"
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
	svc := crud.NewService[doctor.Doctor]("Doctor", restapi.NewDoctorResource(app.Client()), app.EventPublisher(), doctor.Doctor.Key)
	app.RegisterServices(svc)
	app.RegisterScreens(controllers.NewDoctorScreen(app, svc))
	app.RegisterNavItems(NavItems...)
	app.RegisterMocks(mockdata.RegisterMocks)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(DoctorsLink.Name, DoctorsLink.Href, "doctors list"),
	)
	return nil
}

func (m *Module) Name() string {
	return "doctor"
}
