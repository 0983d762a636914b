package collection

import (
	"github.com/graphwatch/graphwatch-go/pkg/graph"
	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// entry records how a subscribed entity was reached by the latest walk.
type entry struct {
	parent model.Entity
	field  string
	depth  int
}

// subscriptionSet tracks which entities carry the relay handler.
type subscriptionSet struct {
	handler model.Subscriber

	// entries by entity identity
	entries map[model.Entity]*entry

	// order is the walk order of the latest reconcile
	order []model.Entity
}

func newSubscriptionSet(handler model.Subscriber) *subscriptionSet {
	return &subscriptionSet{
		handler: handler,
		entries: make(map[model.Entity]*entry),
	}
}

// has returns true if e is subscribed.
func (s *subscriptionSet) has(e model.Entity) bool {
	_, ok := s.entries[e]
	return ok
}

// len returns the number of subscribed entities.
func (s *subscriptionSet) len() int {
	return len(s.entries)
}

// entities returns the subscribed entities in walk order.
func (s *subscriptionSet) entities() []model.Entity {
	out := make([]model.Entity, len(s.order))
	copy(out, s.order)
	return out
}

// reconcile makes the subscription set equal to nodes. Entities new to the
// set are subscribed in walk order; entities missing from nodes are
// unsubscribed in their previous order.
func (s *subscriptionSet) reconcile(nodes []graph.Node) (attached []graph.Node, detached []model.Entity) {
	next := make(map[model.Entity]*entry, len(nodes))
	order := make([]model.Entity, 0, len(nodes))

	for _, n := range nodes {
		next[n.Entity] = &entry{parent: n.Parent, field: n.Field, depth: n.Depth}
		order = append(order, n.Entity)
		if _, ok := s.entries[n.Entity]; !ok {
			n.Entity.Subscribe(s.handler)
			attached = append(attached, n)
		}
	}

	for _, e := range s.order {
		if _, ok := next[e]; !ok {
			e.Unsubscribe(s.handler)
			detached = append(detached, e)
		}
	}

	s.entries = next
	s.order = order
	return attached, detached
}

// clear unsubscribes every entity.
func (s *subscriptionSet) clear() []model.Entity {
	detached := s.order
	for _, e := range detached {
		e.Unsubscribe(s.handler)
	}
	s.entries = make(map[model.Entity]*entry)
	s.order = nil
	return detached
}

// chain builds the containment path from e up to its root using the parent
// links of the latest walk.
func (s *subscriptionSet) chain(e model.Entity, field string) []Hop {
	hops := []Hop{{Entity: e, Field: field}}
	current := e
	for i := 0; i < len(s.entries); i++ {
		en, ok := s.entries[current]
		if !ok || en.parent == nil {
			break
		}
		hops = append(hops, Hop{Entity: en.parent, Field: en.field})
		current = en.parent
	}
	return hops
}
