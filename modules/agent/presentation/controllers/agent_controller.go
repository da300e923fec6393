package controllers

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iota-uz/pharma-admin/modules/agent/domain/agent"
	"github.com/iota-uz/pharma-admin/modules/agent/presentation/controllers/dtos"
	"github.com/iota-uz/pharma-admin/modules/agent/presentation/mappers"
	"github.com/iota-uz/pharma-admin/modules/agent/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

const (
	AgentsRoute    = "/agents"
	AgentFormRoute = "/agents/form"
)

type AgentScreen = crud.Binding[agent.Agent, dtos.AgentForm, bool, viewmodels.Agent]

func NewAgentScreen(app application.Application, svc *crud.Service[agent.Agent]) *AgentScreen {
	assetURL := app.Client().AssetURL
	return &AgentScreen{
		Key:      "agents",
		Label:    "Agents",
		ListPath: AgentsRoute,
		Form: &crud.FormConfig[agent.Agent, dtos.AgentForm]{
			Resource:   "Agent",
			ListRoute:  AgentsRoute,
			Store:      svc,
			FromRecord: dtos.AgentFormFrom,
			Files: []upload.FieldSpec{{
				Field:    "id_proof",
				Label:    "ID proof",
				Accept:   append(append([]string(nil), upload.Images...), upload.Documents...),
				MaxSize:  5 * upload.MiB,
				Required: true,
			}},
			Assets:   func(a agent.Agent) map[string]string { return map[string]string{"id_proof": a.IDProof} },
			AssetURL: assetURL,
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		Lister: crud.ListConfig[agent.Agent, bool, viewmodels.Agent]{
			Resource:  "Agent",
			FormRoute: AgentFormRoute,
			Store:     svc,
			Access: crud.Accessor[agent.Agent, bool]{
				ID:         agent.Agent.Key,
				Status:     func(a agent.Agent) bool { return a.Status },
				WithStatus: agent.Agent.WithStatus,
			},
			ToView:   mappers.AgentToViewModel(assetURL),
			Search:   func(a agent.Agent) []string { return []string{a.Name, a.Phone, a.Region} },
			Category: func(a agent.Agent) string { return a.Region },
			Surface:  app.Surface(),
			Logger:   app.Logger(),
		},
		ParseStatus: crud.ParseBoolStatus,
		Statuses:    crud.BoolStatuses,
		Summarize:   summarizeAgents,
	}
}

func summarizeAgents(rows []agent.Agent) crud.Summary {
	villages := 0
	for _, a := range rows {
		villages += len(a.Villages)
	}
	return crud.Summary{
		Stats: []crud.Stat{
			{Label: "Active", Value: strconv.Itoa(crud.Count(rows, func(a agent.Agent) bool { return a.Status }))},
			{Label: "Villages covered", Value: strconv.Itoa(villages)},
		},
		Series: []crud.Series{
			{Name: "Villages by region", Points: crud.GroupSum(rows,
				func(a agent.Agent) string { return a.Region },
				func(a agent.Agent) decimal.Decimal { return decimal.NewFromInt(int64(len(a.Villages))) },
			)},
		},
	}
}
