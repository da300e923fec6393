package mappers

import (
	"strings"

	"github.com/iota-uz/pharma-admin/modules/agent/domain/agent"
	"github.com/iota-uz/pharma-admin/modules/agent/presentation/viewmodels"
	"github.com/iota-uz/pharma-admin/pkg/mapping"
)

func AgentToViewModel(assetURL func(string) string) func(agent.Agent) viewmodels.Agent {
	return func(a agent.Agent) viewmodels.Agent {
		villages := make([]string, 0, len(a.Villages))
		for _, v := range a.Villages {
			if v.Area != "" {
				villages = append(villages, v.Name+" ("+v.Area+")")
				continue
			}
			villages = append(villages, v.Name)
		}
		proof := ""
		if a.IDProof != "" {
			proof = assetURL(a.IDProof)
		}
		return viewmodels.Agent{
			AgentID:    a.AgentID.String(),
			Name:       a.Name,
			Phone:      a.Phone,
			Region:     a.Region,
			Villages:   strings.Join(villages, ", "),
			Areas:      strings.Join(a.Areas, ", "),
			IDProofURL: proof,
			Status:     mapping.Published(a.Status),
		}
	}
}
