package crud

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/pkg/eventbus"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

var (
	// ErrCancelled is returned when the user declines a confirmation.
	ErrCancelled   = serrors.NewError("ACTION_CANCELLED", "Action cancelled", "")
	ErrNoConfirmer = serrors.NewError("NO_CONFIRMER", "no confirmer configured", "")
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a user-facing notification. It is published on the event bus;
// renderers subscribe with OnNotice.
type Notice struct {
	Level    Level
	Resource string
	Action   string
	Message  string
}

type Prompt struct {
	Title   string
	Message string
}

// Confirmer blocks until the user accepts or declines a prompt.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

type ConfirmFunc func(ctx context.Context, p Prompt) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) (bool, error) {
	return f(ctx, p)
}

type Navigator interface {
	Navigate(ctx context.Context, route string)
}

type NavigateFunc func(ctx context.Context, route string)

func (f NavigateFunc) Navigate(ctx context.Context, route string) {
	f(ctx, route)
}

// Surface gates actions behind confirmations and reports their outcome.
type Surface struct {
	bus       eventbus.EventBus
	confirmer Confirmer
	navigator Navigator
	log       *logrus.Logger
}

func NewSurface(bus eventbus.EventBus, confirmer Confirmer, navigator Navigator, log *logrus.Logger) *Surface {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &Surface{bus: bus, confirmer: confirmer, navigator: navigator, log: log}
}

// OnNotice subscribes fn to every notice published on bus.
func OnNotice(bus eventbus.EventBus, fn func(Notice)) {
	eventbus.SubscribeTo(bus, fn)
}

// LogNotices mirrors notices into log.
func LogNotices(bus eventbus.EventBus, log *logrus.Logger) {
	OnNotice(bus, func(n Notice) {
		entry := log.WithFields(logrus.Fields{
			"resource": n.Resource,
			"action":   n.Action,
			"level":    n.Level.String(),
		})
		if n.Level == LevelError {
			entry.Warn(n.Message)
			return
		}
		entry.Info(n.Message)
	})
}

func (s *Surface) Notify(n Notice) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(n)
}

func (s *Surface) Success(resource, action, message string) {
	s.Notify(Notice{Level: LevelSuccess, Resource: resource, Action: action, Message: message})
}

func (s *Surface) Info(resource, action, message string) {
	s.Notify(Notice{Level: LevelInfo, Resource: resource, Action: action, Message: message})
}

// Fail reports err with the most specific message available.
func (s *Surface) Fail(resource, action string, err error) {
	s.log.WithFields(logrus.Fields{"resource": resource, "action": action}).WithError(err).Debug("action failed")
	s.Notify(Notice{Level: LevelError, Resource: resource, Action: action, Message: restclient.Message(err)})
}

// Confirm asks every prompt in order and stops at the first decline. A
// decline posts an informational notice and returns ErrCancelled; nothing
// else happens.
func (s *Surface) Confirm(ctx context.Context, resource, action string, prompts ...Prompt) error {
	if s.confirmer == nil {
		return ErrNoConfirmer
	}
	for _, p := range prompts {
		ok, err := s.confirmer.Confirm(ctx, p)
		if err != nil {
			s.Fail(resource, action, err)
			return err
		}
		if !ok {
			s.Info(resource, action, ErrCancelled.Message)
			return ErrCancelled
		}
	}
	return nil
}

func (s *Surface) Navigate(ctx context.Context, route string) {
	if s.navigator == nil || route == "" {
		return
	}
	s.navigator.Navigate(ctx, route)
}
