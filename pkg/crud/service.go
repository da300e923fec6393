package crud

import (
	"context"

	"github.com/iota-uz/pharma-admin/pkg/eventbus"
	"github.com/iota-uz/pharma-admin/pkg/httpapi"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

// Repository is the Resource Client surface a Service wraps.
type Repository[T any] interface {
	ListStore[T]
	Store[T]
}

// Changed is published after every successful write.
type Changed struct {
	Resource string
	Action   string
	ID       string
}

// Service fronts a Repository and announces writes on the event bus.
type Service[T any] struct {
	resource  string
	repo      Repository[T]
	publisher eventbus.EventBus
	id        func(T) string
}

func NewService[T any](resource string, repo Repository[T], publisher eventbus.EventBus, id func(T) string) *Service[T] {
	return &Service[T]{resource: resource, repo: repo, publisher: publisher, id: id}
}

func (s *Service[T]) Resource() string { return s.resource }

func (s *Service[T]) List(ctx context.Context, q restclient.Query) (httpapi.Page[T], error) {
	return s.repo.List(ctx, q)
}

func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service[T]) Create(ctx context.Context, p *restclient.Payload) (T, error) {
	rec, err := s.repo.Create(ctx, p)
	if err != nil {
		return rec, err
	}
	s.publish("created", s.id(rec))
	return rec, nil
}

func (s *Service[T]) Update(ctx context.Context, id string, p *restclient.Payload) (T, error) {
	rec, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return rec, err
	}
	s.publish("updated", id)
	return rec, nil
}

func (s *Service[T]) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.publish("deleted", id)
	return nil
}

func (s *Service[T]) SetStatus(ctx context.Context, id string, status any) (T, error) {
	rec, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return rec, err
	}
	s.publish("status", id)
	return rec, nil
}

func (s *Service[T]) publish(action, id string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(Changed{Resource: s.resource, Action: action, ID: id})
}
