package domain

import "time"

// AggregateRoot holds the identity and timestamps shared by every catalog aggregate.
type AggregateRoot[ID ~string] struct {
	id        ID
	createdAt time.Time
	updatedAt time.Time
}

// NewAggregateRoot creates a root stamped with the current instant.
func NewAggregateRoot[ID ~string](id ID) AggregateRoot[ID] {
	now := Now()
	return AggregateRoot[ID]{
		id:        id,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreAggregateRoot rebuilds a root from stored values.
func RestoreAggregateRoot[ID ~string](id ID, createdAt, updatedAt time.Time) AggregateRoot[ID] {
	return AggregateRoot[ID]{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the aggregate's identifier
func (a AggregateRoot[ID]) ID() ID {
	return a.id
}

// CreatedAt returns the aggregate's creation time
func (a AggregateRoot[ID]) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the aggregate's last update time
func (a AggregateRoot[ID]) UpdatedAt() time.Time {
	return a.updatedAt
}

// Touch moves updatedAt strictly forward.
func (a *AggregateRoot[ID]) Touch() {
	a.updatedAt = Touch(a.updatedAt)
}
