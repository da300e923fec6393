package eventbus

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

// EventBus dispatches published values to every subscriber whose single
// function signature accepts them. Handlers run synchronously on the
// publishing goroutine, in subscription order.
type EventBus interface {
	Publish(args ...any)
	Subscribe(handler any)
	Unsubscribe(handler any)
	Clear()
	SubscribersCount() int
}

type EventBusWithError interface {
	EventBus
	PublishE(args ...any) error
}

var (
	ErrNoSubscribers        = serrors.NewError("EVENTBUS_NO_SUBSCRIBERS", "no matching subscribers", "")
	ErrInvalidHandlerReturn = serrors.NewError("EVENTBUS_INVALID_HANDLER_RETURN", "invalid handler return signature", "")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type subscriber struct {
	fn reflect.Value
	id uintptr
}

type publisherImpl struct {
	log *logrus.Logger

	mu          sync.RWMutex
	subscribers []subscriber
}

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

// SubscribeTo registers a typed handler.
func SubscribeTo[E any](bus EventBus, handler func(E)) {
	bus.Subscribe(handler)
}

// MatchSignature reports whether handler can be called with args.
func MatchSignature(handler any, args []any) bool {
	t := reflect.TypeOf(handler)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() != len(args) {
		return false
	}
	for i, arg := range args {
		paramType := t.In(i)
		if arg == nil {
			if paramType.Kind() != reflect.Interface && paramType.Kind() != reflect.Ptr {
				return false
			}
			continue
		}
		argType := reflect.TypeOf(arg)
		if paramType.Kind() == reflect.Interface {
			if !argType.Implements(paramType) {
				return false
			}
			continue
		}
		if !argType.AssignableTo(paramType) {
			return false
		}
	}
	return true
}

func callArgs(handler reflect.Type, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(handler.In(i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}
	return in
}

func (p *publisherImpl) snapshot() []subscriber {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]subscriber, len(p.subscribers))
	copy(out, p.subscribers)
	return out
}

func (p *publisherImpl) Publish(args ...any) {
	handled := false
	for _, s := range p.snapshot() {
		if !MatchSignature(s.fn.Interface(), args) {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil && p.log != nil {
					p.log.Errorf("eventbus: handler %s panicked with args %v: %v", s.fn.Type(), args, r)
				}
			}()
			s.fn.Call(callArgs(s.fn.Type(), args))
			handled = true
		}()
	}
	if !handled && p.log != nil {
		p.log.Warnf("eventbus.Publish: no matching subscribers for event with args: %v", args)
	}
}

func (p *publisherImpl) PublishE(args ...any) error {
	handled := false
	var errs []error
	for _, s := range p.snapshot() {
		if !MatchSignature(s.fn.Interface(), args) {
			continue
		}
		handled = true
		func() {
			defer func() {
				if r := recover(); r != nil {
					errs = append(errs, fmt.Errorf("eventbus: handler %s panicked: %v", s.fn.Type(), r))
				}
			}()
			out := s.fn.Call(callArgs(s.fn.Type(), args))
			switch {
			case len(out) == 0:
			case len(out) != 1:
				errs = append(errs, fmt.Errorf("%w: handler %s returned %d values", ErrInvalidHandlerReturn, s.fn.Type(), len(out)))
			case out[0].Type() != errorType:
				errs = append(errs, fmt.Errorf("%w: handler %s return type is %s", ErrInvalidHandlerReturn, s.fn.Type(), out[0].Type()))
			case !out[0].IsNil():
				errs = append(errs, out[0].Interface().(error))
			}
		}()
	}
	if !handled {
		return ErrNoSubscribers
	}
	return errors.Join(errs...)
}

func (p *publisherImpl) Subscribe(handler any) {
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		panic("handler must be a function")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, subscriber{fn: v, id: v.Pointer()})
}

// Unsubscribe removes the first subscription of handler. Functions are
// compared by code pointer, so distinct closures of one literal match too.
func (p *publisherImpl) Unsubscribe(handler any) {
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, s := range p.subscribers {
		if s.id == v.Pointer() {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return
		}
	}
}

func (p *publisherImpl) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = nil
}

func (p *publisherImpl) SubscribersCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscribers)
}
