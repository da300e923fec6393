// Package testkit runs modules against an in-process development backend.
package testkit

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/configuration"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/mockapi"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

// Confirmer answers prompts from a script. An exhausted script declines.
type Confirmer struct {
	mu      sync.Mutex
	answers []bool
	Prompts []crud.Prompt
}

func (c *Confirmer) Answer(answers ...bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.answers = append(c.answers, answers...)
}

func (c *Confirmer) Confirm(_ context.Context, p crud.Prompt) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Prompts = append(c.Prompts, p)
	if len(c.answers) == 0 {
		return false, nil
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a, nil
}

type Env struct {
	App       application.Application
	Backend   *mockapi.Backend
	Client    *restclient.Client
	Confirmer *Confirmer
	BaseURL   string

	mu      sync.Mutex
	routes  []string
	notices []crud.Notice
}

// New serves the modules' mock collections, unseeded, over httptest and
// registers the modules against a client pointed at it.
func New(t testing.TB, modules ...application.Module) *Env {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	srv := mockapi.New(mockapi.Options{Logger: log})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	env := &Env{
		Backend:   srv.Backend,
		Client:    restclient.New(restclient.Options{BaseURL: ts.URL, Logger: log}),
		Confirmer: &Confirmer{},
		BaseURL:   ts.URL,
	}
	env.App = application.New(&application.ApplicationOptions{
		Config:    &configuration.Configuration{PageSize: 10, Currency: "INR"},
		Client:    env.Client,
		Logger:    log,
		Confirmer: env.Confirmer,
		Navigator: crud.NavigateFunc(func(_ context.Context, route string) {
			env.mu.Lock()
			defer env.mu.Unlock()
			env.routes = append(env.routes, route)
		}),
	})
	crud.OnNotice(env.App.EventPublisher(), func(n crud.Notice) {
		env.mu.Lock()
		defer env.mu.Unlock()
		env.notices = append(env.notices, n)
	})

	for _, m := range modules {
		if err := m.Register(env.App); err != nil {
			t.Fatalf("register module %s: %v", m.Name(), err)
		}
	}
	for _, mock := range env.App.Mocks() {
		mock(env.Backend, false)
	}
	return env
}

// Screen returns a registered screen or fails the test.
func (e *Env) Screen(t testing.TB, name string) crud.Screen {
	t.Helper()
	s, ok := e.App.Screen(name)
	if !ok {
		t.Fatalf("screen %q is not registered", name)
	}
	return s
}

func (e *Env) Notices() []crud.Notice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]crud.Notice(nil), e.notices...)
}

func (e *Env) LastNotice() crud.Notice {
	n := e.Notices()
	if len(n) == 0 {
		return crud.Notice{}
	}
	return n[len(n)-1]
}

func (e *Env) Routes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.routes...)
}
