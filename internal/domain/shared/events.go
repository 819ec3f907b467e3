package shared

import "time"

// DomainEvent represents an event that has occurred in the domain.
// Aggregates collect events; the application service drains them and the
// surrounding shell decides how to dispatch.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}
