package crud

import (
	"context"
	"strconv"

	"github.com/iota-uz/pharma-admin/pkg/eventbus"
	"github.com/iota-uz/pharma-admin/pkg/httpapi"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

type scriptedConfirmer struct {
	answers []bool
	prompts []Prompt
	err     error
}

func (s *scriptedConfirmer) Confirm(_ context.Context, p Prompt) (bool, error) {
	s.prompts = append(s.prompts, p)
	if s.err != nil {
		return false, s.err
	}
	if len(s.answers) == 0 {
		return false, nil
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

type recordingNavigator struct {
	routes []string
}

func (n *recordingNavigator) Navigate(_ context.Context, route string) {
	n.routes = append(n.routes, route)
}

type harness struct {
	bus       eventbus.EventBus
	confirmer *scriptedConfirmer
	navigator *recordingNavigator
	notices   []Notice
	surface   *Surface
}

func newHarness(answers ...bool) *harness {
	h := &harness{
		bus:       eventbus.NewEventPublisher(nil),
		confirmer: &scriptedConfirmer{answers: answers},
		navigator: &recordingNavigator{},
	}
	OnNotice(h.bus, func(n Notice) { h.notices = append(h.notices, n) })
	h.surface = NewSurface(h.bus, h.confirmer, h.navigator, nil)
	return h
}

func (h *harness) last() Notice {
	if len(h.notices) == 0 {
		return Notice{}
	}
	return h.notices[len(h.notices)-1]
}

type formStore[T any] struct {
	record   T
	getErr   error
	writeErr error
	gets     int
	creates  []*restclient.Payload
	updates  map[string][]*restclient.Payload
}

func (s *formStore[T]) Get(_ context.Context, _ string) (T, error) {
	s.gets++
	return s.record, s.getErr
}

func (s *formStore[T]) Create(_ context.Context, p *restclient.Payload) (T, error) {
	s.creates = append(s.creates, p)
	return s.record, s.writeErr
}

func (s *formStore[T]) Update(_ context.Context, id string, p *restclient.Payload) (T, error) {
	if s.updates == nil {
		s.updates = map[string][]*restclient.Payload{}
	}
	s.updates[id] = append(s.updates[id], p)
	return s.record, s.writeErr
}

type agent struct {
	AgentID int    `json:"agent_id"`
	Name    string `json:"name"`
	Region  string `json:"region"`
	Status  bool   `json:"status"`
}

type statusCall struct {
	id     string
	status any
}

type agentStore struct {
	all         []agent
	listErr     error
	removeErr   error
	statusErr   error
	queries     []restclient.Query
	removed     []string
	statusCalls []statusCall
}

func (s *agentStore) List(_ context.Context, q restclient.Query) (httpapi.Page[agent], error) {
	s.queries = append(s.queries, q)
	if s.listErr != nil {
		return httpapi.Page[agent]{}, s.listErr
	}
	data := s.all
	if q.Limit > 0 {
		start := (q.Page - 1) * q.Limit
		end := min(start+q.Limit, len(s.all))
		if start > len(s.all) {
			start = len(s.all)
		}
		data = s.all[start:end]
	}
	return httpapi.Page[agent]{Data: append([]agent(nil), data...), TotalItems: len(s.all)}, nil
}

func (s *agentStore) Remove(_ context.Context, id string) error {
	s.removed = append(s.removed, id)
	return s.removeErr
}

func (s *agentStore) SetStatus(_ context.Context, id string, status any) (agent, error) {
	s.statusCalls = append(s.statusCalls, statusCall{id: id, status: status})
	return agent{}, s.statusErr
}

func agentAccess() Accessor[agent, bool] {
	return Accessor[agent, bool]{
		ID:     func(a agent) string { return strconv.Itoa(a.AgentID) },
		Status: func(a agent) bool { return a.Status },
		WithStatus: func(a agent, s bool) agent {
			a.Status = s
			return a
		},
	}
}
