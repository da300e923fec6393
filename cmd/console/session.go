package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/modules"
	"github.com/iota-uz/pharma-admin/pkg/application"
	"github.com/iota-uz/pharma-admin/pkg/configuration"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

// session is the application as seen from one console invocation.
type session struct {
	app application.Application
	out io.Writer
	err io.Writer
	yes bool
}

type sessionOptions struct {
	Config  *configuration.Configuration
	Logger  *logrus.Logger
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Modules []application.Module
}

func newSession(opts sessionOptions) (*session, error) {
	conf := opts.Config
	log := opts.Logger
	if log == nil {
		log = conf.Logger()
	}
	s := &session{out: opts.Out, err: opts.Err}

	client := restclient.New(restclient.Options{
		BaseURL:         conf.API.BaseURL,
		Token:           conf.API.Token,
		Timeout:         conf.API.Timeout,
		RequestIDHeader: conf.RequestIDHeader,
		Logger:          log,
	})
	s.app = application.New(&application.ApplicationOptions{
		Config:    conf,
		Client:    client,
		Logger:    log,
		Confirmer: &terminalConfirmer{in: bufio.NewReader(opts.In), out: opts.Err, yes: &s.yes},
		Navigator: crud.NavigateFunc(func(_ context.Context, route string) {
			log.WithField("route", route).Debug("navigate")
		}),
	})
	crud.OnNotice(s.app.EventPublisher(), printNotices(opts.Err))
	crud.LogNotices(s.app.EventPublisher(), log)

	if err := modules.Load(s.app, opts.Modules...); err != nil {
		return nil, err
	}
	s.app.RegisterNavItems(modules.NavLinks...)
	return s, nil
}

// checkToken warns when API_TOKEN has already expired.
func (s *session) checkToken(now time.Time) {
	exp, ok, err := s.app.Config().API.TokenExpiry()
	log := s.app.Logger()
	switch {
	case err != nil:
		log.WithError(err).Warn("cannot read API_TOKEN expiry")
	case ok && exp.Before(now):
		log.WithField("expired_at", exp.UTC().Format(time.RFC3339)).Warn("API_TOKEN has expired")
		fmt.Fprintf(s.err, "warning: API_TOKEN expired at %s; requests will be rejected\n", exp.UTC().Format(time.RFC3339))
	}
}
