// Package eventbus provides the process-wide publish/subscribe channel that
// decouples feature services from the reactions wired across them.
package eventbus

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"pos-backend/domain/events"
)

// Handler processes a single domain event. Handler errors are logged and
// isolated; they never reach the publisher or sibling handlers.
type Handler func(ctx context.Context, event events.DomainEvent) error

// Subscription identifies one registered handler and allows its removal.
// Failing to cancel a subscription leaks the handler for the process
// lifetime, which matches the bus's intended scope.
type Subscription struct {
	bus       *Bus
	eventType string
	handler   Handler
	id        uint64
}

// Cancel removes the subscription from the bus. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.bus.unsubscribe(s)
}

type task struct {
	ctx   context.Context
	sub   *Subscription
	event events.DomainEvent
}

// Bus dispatches domain events to registered handlers. Publish enqueues one
// task per handler onto a single dispatcher goroutine, so handlers for one
// event type run in registration order and a slow or failing handler never
// blocks the publisher.
type Bus struct {
	mu     sync.Mutex
	subs   map[string][]*Subscription
	nextID uint64

	queueMu sync.Mutex
	queue   []task
	wake    *sync.Cond
	closed  bool

	inflight sync.WaitGroup
	stopped  chan struct{}
	logger   *zap.Logger
}

// New creates a bus and starts its dispatcher.
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bus{
		subs:    make(map[string][]*Subscription),
		stopped: make(chan struct{}),
		logger:  logger,
	}
	b.wake = sync.NewCond(&b.queueMu)
	go b.dispatch()
	return b
}

// Subscribe registers a handler for an event type. Multiple handlers per
// type are allowed and all are invoked.
func (b *Bus) Subscribe(eventType string, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		bus:       b,
		eventType: eventType,
		handler:   h,
		id:        b.nextID,
	}
	b.subs[eventType] = append(b.subs[eventType], sub)
	return sub
}

func (b *Bus) unsubscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[s.eventType]
	filtered := subs[:0]
	for _, sub := range subs {
		if sub.id != s.id {
			filtered = append(filtered, sub)
		}
	}
	if len(filtered) == 0 {
		delete(b.subs, s.eventType)
	} else {
		b.subs[s.eventType] = filtered
	}
}

// Publish delivers an event to all handlers currently registered for its
// type. It returns as soon as the work is enqueued; use Wait to observe
// completion. Publishing on a closed bus drops the event with a warning.
func (b *Bus) Publish(ctx context.Context, event events.DomainEvent) {
	if event == nil {
		return
	}

	b.mu.Lock()
	subs := make([]*Subscription, len(b.subs[event.EventType()]))
	copy(subs, b.subs[event.EventType()])
	b.mu.Unlock()

	if len(subs) == 0 {
		b.logger.Debug("no handlers for event",
			zap.String("eventType", event.EventType()),
		)
		return
	}

	b.queueMu.Lock()
	defer b.queueMu.Unlock()
	if b.closed {
		b.logger.Warn("event published after bus close",
			zap.String("eventType", event.EventType()),
		)
		return
	}
	for _, sub := range subs {
		b.inflight.Add(1)
		b.queue = append(b.queue, task{ctx: ctx, sub: sub, event: event})
	}
	b.wake.Signal()
}

func (b *Bus) dispatch() {
	defer close(b.stopped)
	for {
		b.queueMu.Lock()
		for len(b.queue) == 0 && !b.closed {
			b.wake.Wait()
		}
		if len(b.queue) == 0 && b.closed {
			b.queueMu.Unlock()
			return
		}
		t := b.queue[0]
		b.queue = b.queue[1:]
		b.queueMu.Unlock()

		b.run(t)
	}
}

func (b *Bus) run(t task) {
	defer b.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("eventType", t.event.EventType()),
				zap.String("eventId", t.event.EventID()),
				zap.Any("panic", r),
			)
		}
	}()

	if err := t.sub.handler(t.ctx, t.event); err != nil {
		b.logger.Error("event handler failed",
			zap.String("eventType", t.event.EventType()),
			zap.String("eventId", t.event.EventID()),
			zap.Error(err),
		)
	}
}

// Wait blocks until every published task, including tasks enqueued by
// handlers themselves, has been handled.
func (b *Bus) Wait() {
	b.inflight.Wait()
}

// Close drains the queue and stops the dispatcher. The bus accepts no new
// events afterwards.
func (b *Bus) Close() {
	b.queueMu.Lock()
	if b.closed {
		b.queueMu.Unlock()
		return
	}
	b.closed = true
	b.wake.Signal()
	b.queueMu.Unlock()
	<-b.stopped
}
