// Package events defines the closed set of domain events exchanged over the
// in-process event bus. Producers and consumers share these concrete types;
// the bus itself only sees the DomainEvent interface.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an important business occurrence in one feature, consumed
// by zero or more other features. Events are ephemeral and not persisted.
type DomainEvent interface {
	// EventID returns a unique identifier for this event instance.
	EventID() string

	// EventType returns the dotted event type name (see constants.go).
	EventType() string

	// AggregateID returns the id of the entity that generated this event.
	AggregateID() string

	// EntityName returns the entity kind this event concerns. The cache
	// invalidation rules are keyed by entity name.
	EntityName() string

	// OccurredAt returns when the event was created.
	OccurredAt() time.Time
}

// BaseEvent carries the fields common to every domain event.
type BaseEvent struct {
	ID        string    `json:"eventId"`
	Type      string    `json:"eventType"`
	Entity    string    `json:"entityName"`
	Aggregate string    `json:"aggregateId"`
	Occurred  time.Time `json:"occurredAt"`
}

// NewBaseEvent creates the common event envelope.
func NewBaseEvent(eventType, entityName, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Entity:    entityName,
		Aggregate: aggregateID,
		Occurred:  time.Now(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) EntityName() string    { return e.Entity }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) OccurredAt() time.Time { return e.Occurred }
