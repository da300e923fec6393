package agent

import (
	"github.com/pkg/errors"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

type Village struct {
	Name string `json:"name"`
	Area string `json:"area"`
}

// Agent is a field sales agent covering a set of villages.
type Agent struct {
	AgentID  restclient.ID `json:"agent_id"`
	Name     string        `json:"name"`
	Phone    string        `json:"phone"`
	Email    string        `json:"email"`
	Region   string        `json:"region"`
	Villages []Village     `json:"villages"`
	Areas    []string      `json:"areas"`
	IDProof  string        `json:"id_proof"`
	Status   bool          `json:"status"`
}

func (a Agent) Validate() error {
	if a.AgentID.IsZero() {
		return errors.New("agent record has no agent_id")
	}
	return nil
}

func (a Agent) Key() string { return a.AgentID.String() }

func (a Agent) WithStatus(status bool) Agent {
	a.Status = status
	return a
}
