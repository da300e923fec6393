// Package mockdata declares the agent collections on the development
// backend and seeds them.
package mockdata

import (
	"net/http"
	"strings"

	"github.com/iota-uz/pharma-admin/modules/agent/domain/agent"
	"github.com/iota-uz/pharma-admin/modules/agent/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
)

func RegisterMocks(b *mockapi.Backend, seed bool) {
	mockapi.Register(b, restapi.AgentResource, mockapi.CollectionOptions[agent.Agent]{
		Label:  "Agent",
		IDKey:  "agent_id",
		Unique: []string{"phone"},
		Validate: func(a agent.Agent) error {
			if strings.TrimSpace(a.Name) == "" {
				return &mockapi.Reject{Status: http.StatusBadRequest, Message: "Agent name is required"}
			}
			return nil
		},
	})
	if !seed {
		return
	}
	b.Seed(restapi.AgentResource,
		mockapi.Record{
			"name": "Suresh Patil", "phone": "+91 94480 12121", "email": "suresh@agents.in", "region": "North Karnataka",
			"villages": []map[string]string{{"name": "Kittur", "area": "Belagavi"}, {"name": "Saundatti", "area": "Belagavi"}},
			"areas":    []string{"Belagavi", "Dharwad"}, "id_proof": "", "status": true,
		},
		mockapi.Record{
			"name": "Lakshmi N", "phone": "+91 94481 34343", "email": "", "region": "Coastal",
			"villages": []map[string]string{{"name": "Kundapura", "area": "Udupi"}},
			"areas":    []string{"Udupi"}, "id_proof": "", "status": false,
		},
	)
}
