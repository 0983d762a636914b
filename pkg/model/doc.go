// Package model implements observable entities.
//
// # Entities
//
// An entity is a pointer to a struct that embeds Notifier and describes its
// own shape through Fields. Every mutation goes through Set, which stores the
// new value and notifies subscribers only when the value actually changed:
//
//	type LineItem struct {
//		model.Notifier
//		cost int64
//	}
//
//	func (l *LineItem) SetCost(v int64) { model.Set(l, &l.cost, "Cost", v) }
//
//	func (l *LineItem) Fields() []model.Field {
//		return []model.Field{
//			model.ValueField("Cost", model.DataTypeInt64, func() any { return l.cost }),
//		}
//	}
//
// # Shape
//
// Fields returns the ordered list of readable fields. A field whose Type is
// DataTypeEntity is a containment edge: its value may hold another entity.
// The graph package follows these edges to discover every entity reachable
// from a root.
//
// Containment is not ownership. A child may be shared by several parents or
// reference one of its own ancestors.
//
// # Identity
//
// Entities are compared by pointer identity, never by value. ID returns a
// random label that is stable for the lifetime of the entity; it exists for
// logs and display only.
//
// # Subscribers
//
// Subscribers are registered in order and notified synchronously on the
// caller's goroutine. Registering the same subscriber twice is a no-op, and
// so is removing a subscriber that is not registered.
package model
