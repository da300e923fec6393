package agent

import (
	"github.com/iota-uz/pharma-admin/modules/agent/domain/agent"
	"github.com/iota-uz/pharma-admin/modules/agent/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/agent/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/agent/presentation/controllers"
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
	svc := crud.NewService[agent.Agent]("Agent", restapi.NewAgentResource(app.Client()), app.EventPublisher(), agent.Agent.Key)
	app.RegisterServices(svc)
	app.RegisterScreens(controllers.NewAgentScreen(app, svc))
	app.RegisterNavItems(NavItems...)
	app.RegisterMocks(mockdata.RegisterMocks)
	app.QuickLinks().Add(
		spotlight.NewQuickLink(AgentsLink.Name, AgentsLink.Href, "agents list"),
	)
	return nil
}

func (m *Module) Name() string {
	return "agent"
}
