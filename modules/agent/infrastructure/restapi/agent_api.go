package restapi

import (
	"github.com/iota-uz/pharma-admin/modules/agent/domain/agent"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

const AgentResource = "agent"

func NewAgentResource(c *restclient.Client) *restclient.Resource[agent.Agent] {
	return restclient.NewResource[agent.Agent](c, AgentResource)
}
