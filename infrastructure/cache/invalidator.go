package cache

import (
	"context"

	"go.uber.org/zap"

	"pos-backend/domain/events"
	"pos-backend/infrastructure/eventbus"
)

// Invalidator bridges domain events to tag purges: when an entity changes,
// every route pattern registered for that entity is invalidated.
type Invalidator struct {
	store  Store
	rules  *Rules
	logger *zap.Logger
}

// NewInvalidator creates an invalidator over a store and rule table.
func NewInvalidator(store Store, rules *Rules, logger *zap.Logger) *Invalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invalidator{store: store, rules: rules, logger: logger}
}

// Bind subscribes the invalidator to every entity-change event type.
func (i *Invalidator) Bind(bus *eventbus.Bus) []*eventbus.Subscription {
	subs := make([]*eventbus.Subscription, 0, len(events.EntityChangeTypes))
	for _, eventType := range events.EntityChangeTypes {
		subs = append(subs, bus.Subscribe(eventType, i.handle))
	}
	return subs
}

func (i *Invalidator) handle(ctx context.Context, event events.DomainEvent) error {
	patterns := i.rules.RoutesToInvalidate(event.EntityName())
	if len(patterns) == 0 {
		return nil
	}
	removed := i.store.InvalidateTags(ctx, patterns...)
	i.logger.Debug("cache invalidated by event",
		zap.String("eventType", event.EventType()),
		zap.String("entity", event.EntityName()),
		zap.Int("removed", removed),
	)
	return nil
}
