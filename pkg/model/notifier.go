package model

import (
	"sync"

	"github.com/google/uuid"
)

// Entity is an observable unit of state.
//
// Implementations embed Notifier, which supplies every method except Fields.
type Entity interface {
	// Subscribe registers sub for change notifications.
	// Returns false if sub was already registered.
	Subscribe(sub Subscriber) bool

	// Unsubscribe removes sub. Returns false if sub was not registered.
	Unsubscribe(sub Subscriber) bool

	// Fields returns the entity's shape in declaration order.
	Fields() []Field

	// ID returns a display label for the entity.
	ID() string

	notifier() *Notifier
}

// FieldChange is the raw notification fired by an entity when one of its
// fields changes.
type FieldChange struct {
	// Source is the entity whose field changed.
	Source Entity

	// Field is the name of the changed field.
	Field string
}

// Subscriber is notified when a field of a subscribed entity changes.
// Subscribers are compared by identity; use pointer types.
type Subscriber interface {
	OnFieldChanged(change FieldChange)
}

// Listener adapts a function to the Subscriber interface. Each Listener is a
// distinct subscriber, even when two wrap the same function.
type Listener struct {
	fn func(FieldChange)
}

// NewListener creates a Listener calling fn.
func NewListener(fn func(FieldChange)) *Listener {
	return &Listener{fn: fn}
}

// OnFieldChanged calls the wrapped function.
func (l *Listener) OnFieldChanged(change FieldChange) {
	if l.fn != nil {
		l.fn(change)
	}
}

// Notifier holds the ordered subscriber list of an entity.
// The zero value is ready to use. A Notifier must not be copied after first use.
type Notifier struct {
	mu          sync.RWMutex
	id          string
	subscribers []Subscriber
}

func (n *Notifier) notifier() *Notifier { return n }

// ID returns a random label assigned on first call.
func (n *Notifier) ID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.id == "" {
		n.id = uuid.New().String()
	}
	return n.id
}

// Subscribe adds a subscriber for change notifications.
func (n *Notifier) Subscribe(sub Subscriber) bool {
	if sub == nil {
		return false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, s := range n.subscribers {
		if s == sub {
			return false
		}
	}
	n.subscribers = append(n.subscribers, sub)
	return true
}

// Unsubscribe removes a subscriber.
func (n *Notifier) Unsubscribe(sub Subscriber) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, s := range n.subscribers {
		if s == sub {
			n.subscribers = append(n.subscribers[:i:i], n.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

// IsSubscribed returns true if sub is registered.
func (n *Notifier) IsSubscribed(sub Subscriber) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, s := range n.subscribers {
		if s == sub {
			return true
		}
	}
	return false
}

// SubscriberCount returns the number of registered subscribers.
func (n *Notifier) SubscriberCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subscribers)
}

// notify fires a change to a snapshot of the subscriber list, so subscribers
// may register or remove themselves while being notified.
func (n *Notifier) notify(change FieldChange) {
	n.mu.RLock()
	subs := make([]Subscriber, len(n.subscribers))
	copy(subs, n.subscribers)
	n.mu.RUnlock()

	for _, sub := range subs {
		sub.OnFieldChanged(change)
	}
}

// Notify fires a change notification for the named field of e.
// Use it for computed fields whose value is not stored through Set.
func Notify(e Entity, field string) {
	e.notifier().notify(FieldChange{Source: e, Field: field})
}

// Set stores v into *slot and notifies subscribers of e, unless v equals
// the current value. Returns true if the value changed.
func Set[T comparable](e Entity, slot *T, field string, v T) bool {
	if *slot == v {
		return false
	}
	*slot = v
	Notify(e, field)
	return true
}

// IsSubscribed returns true if sub is registered on e.
func IsSubscribed(e Entity, sub Subscriber) bool {
	return e.notifier().IsSubscribed(sub)
}

// SubscriberCount returns the number of subscribers registered on e.
func SubscriberCount(e Entity) int {
	return e.notifier().SubscriberCount()
}
