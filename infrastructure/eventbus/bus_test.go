package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/domain/events"
)

func TestPublishInvokesAllHandlers(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	var mu sync.Mutex
	var calls []string
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		calls = append(calls, "first")
		mu.Unlock()
		return nil
	})
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		calls = append(calls, "second")
		mu.Unlock()
		return nil
	})

	bus.Publish(context.Background(), events.NewProductCreated("p-1"))
	bus.Wait()

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestHandlerErrorDoesNotStopSiblings(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	var mu sync.Mutex
	secondRan := false
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		return errors.New("first handler failed")
	})
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		secondRan = true
		mu.Unlock()
		return nil
	})

	bus.Publish(context.Background(), events.NewProductCreated("p-1"))
	bus.Wait()

	assert.True(t, secondRan)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	var mu sync.Mutex
	secondRan := false
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		panic("boom")
	})
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		secondRan = true
		mu.Unlock()
		return nil
	})

	bus.Publish(context.Background(), events.NewProductCreated("p-1"))
	bus.Wait()

	assert.True(t, secondRan)
}

func TestEventsDeliveredInPublishOrder(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	var mu sync.Mutex
	var seen []string
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		seen = append(seen, e.AggregateID())
		mu.Unlock()
		return nil
	})

	ctx := context.Background()
	for _, id := range []string{"p-1", "p-2", "p-3"} {
		bus.Publish(ctx, events.NewProductCreated(id))
	}
	bus.Wait()

	assert.Equal(t, []string{"p-1", "p-2", "p-3"}, seen)
}

func TestNestedPublishFromHandler(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	var mu sync.Mutex
	reactionRan := false
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		bus.Publish(ctx, events.NewCategoryChanged("c-1"))
		return nil
	})
	bus.Subscribe(events.TypeCategoryChanged, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		reactionRan = true
		mu.Unlock()
		return nil
	})

	bus.Publish(context.Background(), events.NewProductCreated("p-1"))

	// Wait covers the handler's own publish as well.
	bus.Wait()
	assert.True(t, reactionRan)
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	var mu sync.Mutex
	calls := 0
	sub := bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})

	ctx := context.Background()
	bus.Publish(ctx, events.NewProductCreated("p-1"))
	bus.Wait()

	sub.Cancel()
	sub.Cancel() // safe to repeat

	bus.Publish(ctx, events.NewProductCreated("p-2"))
	bus.Wait()

	assert.Equal(t, 1, calls)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	require.NotPanics(t, func() {
		bus.Publish(context.Background(), events.NewProductCreated("p-1"))
		bus.Wait()
	})
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	bus := New(nil)

	var mu sync.Mutex
	calls := 0
	bus.Subscribe(events.TypeProductCreated, func(ctx context.Context, e events.DomainEvent) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})

	bus.Close()
	bus.Publish(context.Background(), events.NewProductCreated("p-1"))

	assert.Equal(t, 0, calls)
}
