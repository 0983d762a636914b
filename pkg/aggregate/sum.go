package aggregate

import (
	"github.com/graphwatch/graphwatch-go/pkg/collection"
	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// FieldSum is the field name fired when a Sum changes.
const FieldSum = "Sum"

// Sum keeps a running total of selector over the members of a collection.
type Sum[T model.Entity] struct {
	model.Notifier

	c        *collection.Collection[T]
	selector func(T) int64

	// watched field names; empty means every field
	fields map[string]struct{}

	value      int64
	recomputes int
}

// NewSum computes selector over c's members and keeps the total current.
// The total is recomputed when a notification names one of fields (any field
// if none are given) and on every membership change.
func NewSum[T model.Entity](c *collection.Collection[T], selector func(T) int64, fields ...string) *Sum[T] {
	s := &Sum[T]{
		c:        c,
		selector: selector,
		fields:   make(map[string]struct{}, len(fields)),
	}
	for _, f := range fields {
		s.fields[f] = struct{}{}
	}
	s.value = s.compute()
	c.Subscribe(s)
	return s
}

// Value returns the current total.
func (s *Sum[T]) Value() int64 {
	return s.value
}

// Recomputes returns how many times the total was recomputed from the stream.
func (s *Sum[T]) Recomputes() int {
	return s.recomputes
}

// Watches returns true if a change to field triggers a recompute.
func (s *Sum[T]) Watches(field string) bool {
	if len(s.fields) == 0 {
		return true
	}
	_, ok := s.fields[field]
	return ok
}

// Close detaches the Sum from its collection. The last value is kept.
func (s *Sum[T]) Close() {
	s.c.Unsubscribe(s)
}

// Fields implements model.Entity.
func (s *Sum[T]) Fields() []model.Field {
	return []model.Field{
		model.ValueField(FieldSum, model.DataTypeInt64, func() any { return s.value }),
	}
}

// OnEntityChanged implements collection.Observer.
func (s *Sum[T]) OnEntityChanged(n collection.Notification) {
	if s.Watches(n.Field) {
		s.recompute()
	}
}

// OnCollectionChanged implements collection.Observer.
func (s *Sum[T]) OnCollectionChanged(collection.Change[T]) {
	s.recompute()
}

func (s *Sum[T]) recompute() {
	s.recomputes++
	model.Set(s, &s.value, FieldSum, s.compute())
}

func (s *Sum[T]) compute() int64 {
	var total int64
	for _, item := range s.c.Items() {
		total += s.selector(item)
	}
	return total
}
