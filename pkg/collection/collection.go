package collection

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/graphwatch/graphwatch-go/pkg/graph"
	"github.com/graphwatch/graphwatch-go/pkg/log"
	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// Collection is an ordered list of root entities that relays change
// notifications from every entity reachable from its members.
type Collection[T model.Entity] struct {
	config Config
	walker graph.Walker

	items     []T
	subs      *subscriptionSet
	relay     *relay[T]
	observers []Observer[T]

	skipped int
}

// relay is the handler registered on every reachable entity.
type relay[T model.Entity] struct {
	c *Collection[T]
}

func (r *relay[T]) OnFieldChanged(change model.FieldChange) {
	r.c.onFieldChanged(change)
}

// New creates an empty collection with default configuration.
func New[T model.Entity]() *Collection[T] {
	return NewWithConfig[T](DefaultConfig())
}

// NewWithConfig creates an empty collection with custom configuration.
func NewWithConfig[T model.Entity](config Config) *Collection[T] {
	if config.SessionID == "" {
		config.SessionID = uuid.New().String()
	}
	if config.Logger == nil {
		config.Logger = log.NoopLogger{}
	}
	if config.Slog == nil {
		config.Slog = slog.Default()
	}

	c := &Collection[T]{config: config}
	c.relay = &relay[T]{c: c}
	c.subs = newSubscriptionSet(c.relay)
	c.walker = graph.Walker{OnSkip: c.onSkip}
	return c
}

// From creates a collection holding items and registers obs, if non-nil,
// before any change can be relayed.
func From[T model.Entity](items []T, obs Observer[T]) (*Collection[T], error) {
	c := New[T]()
	for i, item := range items {
		if isNil(item) {
			return nil, fmt.Errorf("item %d: %w", i, ErrNilEntity)
		}
	}
	c.items = append(c.items, items...)
	c.reconcile("add")
	if obs != nil {
		c.Subscribe(obs)
	}
	return c, nil
}

// SessionID returns the label used in logged events.
func (c *Collection[T]) SessionID() string {
	return c.config.SessionID
}

// Len returns the number of members.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the member at index i.
func (c *Collection[T]) At(i int) (T, error) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(c.items))
	}
	return c.items[i], nil
}

// Items returns a copy of the member list.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// IndexOf returns the position of the first occurrence of e, or -1.
func (c *Collection[T]) IndexOf(e T) int {
	for i, item := range c.items {
		if model.Entity(item) == model.Entity(e) {
			return i
		}
	}
	return -1
}

// Contains returns true if e is a member.
func (c *Collection[T]) Contains(e T) bool {
	return c.IndexOf(e) >= 0
}

// Add appends e and subscribes every entity reachable from it.
func (c *Collection[T]) Add(e T) error {
	return c.Insert(len(c.items), e)
}

// Insert places e at index i and subscribes every entity reachable from it.
func (c *Collection[T]) Insert(i int, e T) error {
	if isNil(e) {
		return ErrNilEntity
	}
	if i < 0 || i > len(c.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(c.items))
	}

	c.items = append(c.items, e)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = e

	c.reconcile("add")
	c.fireCollection(Change[T]{
		Action:   ActionAdd,
		NewItems: []T{e},
		NewIndex: i,
		OldIndex: -1,
	})
	return nil
}

// Remove removes the first occurrence of e. Entities reachable only through
// e are unsubscribed. Returns false if e is not a member.
func (c *Collection[T]) Remove(e T) bool {
	i := c.IndexOf(e)
	if i < 0 {
		return false
	}
	_, _ = c.RemoveAt(i)
	return true
}

// RemoveAt removes the member at index i and returns it.
func (c *Collection[T]) RemoveAt(i int) (T, error) {
	old, err := c.At(i)
	if err != nil {
		return old, err
	}

	c.items = append(c.items[:i:i], c.items[i+1:]...)

	c.reconcile("remove")
	c.fireCollection(Change[T]{
		Action:   ActionRemove,
		OldItems: []T{old},
		NewIndex: -1,
		OldIndex: i,
	})
	return old, nil
}

// Replace puts e at index i and returns the previous member.
func (c *Collection[T]) Replace(i int, e T) (T, error) {
	old, err := c.At(i)
	if err != nil {
		return old, err
	}
	if isNil(e) {
		return old, ErrNilEntity
	}

	c.items[i] = e

	c.reconcile("replace")
	c.fireCollection(Change[T]{
		Action:   ActionReplace,
		NewItems: []T{e},
		OldItems: []T{old},
		NewIndex: i,
		OldIndex: i,
	})
	return old, nil
}

// Move relocates the member at index from to index to.
// The subscription set is unchanged; only walk order is recomputed.
func (c *Collection[T]) Move(from, to int) error {
	item, err := c.At(from)
	if err != nil {
		return err
	}
	if to < 0 || to >= len(c.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, to, len(c.items))
	}
	if from == to {
		return nil
	}

	c.items = append(c.items[:from:from], c.items[from+1:]...)
	c.items = append(c.items, item)
	copy(c.items[to+1:], c.items[to:])
	c.items[to] = item

	c.reconcile("move")
	c.fireCollection(Change[T]{
		Action:   ActionMove,
		NewItems: []T{item},
		OldItems: []T{item},
		NewIndex: to,
		OldIndex: from,
	})
	return nil
}

// Clear removes every member and unsubscribes every entity.
func (c *Collection[T]) Clear() {
	old := c.items
	c.items = nil

	for _, e := range c.subs.clear() {
		c.logDetach(e, "clear")
	}
	c.fireCollection(Change[T]{
		Action:   ActionReset,
		OldItems: old,
		NewIndex: -1,
		OldIndex: -1,
	})
}

// IsSubscribed returns true if the relay handler is registered on e.
func (c *Collection[T]) IsSubscribed(e model.Entity) bool {
	return c.subs.has(e) && model.IsSubscribed(e, c.relay)
}

// SubscribedCount returns the size of the subscription set.
func (c *Collection[T]) SubscribedCount() int {
	return c.subs.len()
}

// Subscribed returns every subscribed entity in walk order.
func (c *Collection[T]) Subscribed() []model.Entity {
	return c.subs.entities()
}

// Skipped returns the number of malformed fields skipped by walks so far.
func (c *Collection[T]) Skipped() int {
	return c.skipped
}

// Subscribe registers obs for the aggregated event stream.
// Returns false if obs was already registered.
func (c *Collection[T]) Subscribe(obs Observer[T]) bool {
	if obs == nil {
		return false
	}
	for _, o := range c.observers {
		if o == obs {
			return false
		}
	}
	c.observers = append(c.observers, obs)
	return true
}

// Unsubscribe removes obs. Returns false if obs was not registered.
func (c *Collection[T]) Unsubscribe(obs Observer[T]) bool {
	for i, o := range c.observers {
		if o == obs {
			c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
			return true
		}
	}
	return false
}

// reconcile walks every member and brings the subscription set in line.
func (c *Collection[T]) reconcile(reason string) {
	roots := make([]model.Entity, len(c.items))
	for i, item := range c.items {
		roots[i] = item
	}

	var nodes []graph.Node
	c.walker.Walk(roots, nil, func(n graph.Node) { nodes = append(nodes, n) })

	attached, detached := c.subs.reconcile(nodes)
	for _, n := range attached {
		c.logAttach(n, reason)
	}
	for _, e := range detached {
		c.logDetach(e, reason)
	}
}

// onFieldChanged relays a raw change from a subscribed entity.
func (c *Collection[T]) onFieldChanged(change model.FieldChange) {
	// A handler earlier in the same dispatch may have detached the source.
	if !c.subs.has(change.Source) {
		return
	}

	rewalk := false
	f, err := model.Lookup(change.Source, change.Field)
	switch {
	case errors.Is(err, model.ErrFieldAccess):
		c.onSkip(&graph.FieldError{Entity: change.Source, Field: change.Field, Err: err})
	case err == nil && f.Type == model.DataTypeEntity:
		rewalk = true
		c.reconcile("rewalk")
	}

	n := Notification{
		Field:  change.Field,
		Entity: change.Source,
		Chain:  c.subs.chain(change.Source, change.Field),
		Rewalk: rewalk,
	}
	c.logRelay(n)

	// Each observer gets its own chain so one cannot alter what the next sees.
	for _, obs := range c.snapshotObservers() {
		own := n
		own.Chain = slices.Clone(n.Chain)
		obs.OnEntityChanged(own)
	}
}

func (c *Collection[T]) fireCollection(change Change[T]) {
	index := change.NewIndex
	if index < 0 {
		index = change.OldIndex
	}
	c.config.Logger.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: c.config.SessionID,
		Category:  log.CategoryCollection,
		Collection: &log.CollectionEvent{
			Action:     change.Action.logAction(),
			Index:      index,
			Members:    len(c.items),
			Subscribed: c.subs.len(),
		},
	})

	for _, obs := range c.snapshotObservers() {
		obs.OnCollectionChanged(change)
	}
}

func (c *Collection[T]) snapshotObservers() []Observer[T] {
	obs := make([]Observer[T], len(c.observers))
	copy(obs, c.observers)
	return obs
}

func (c *Collection[T]) onSkip(err *graph.FieldError) {
	c.skipped++
	c.config.Slog.Warn("skipping unreadable field",
		slog.String("session", c.config.SessionID),
		slog.String("type", fmt.Sprintf("%T", err.Entity)),
		slog.String("field", err.Field),
		slog.Any("error", err.Err),
	)
	c.config.Logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  c.config.SessionID,
		Category:   log.CategoryError,
		EntityID:   err.Entity.ID(),
		EntityType: fmt.Sprintf("%T", err.Entity),
		Field:      err.Field,
		Error: &log.ErrorEventData{
			Message: err.Err.Error(),
			Context: "walk",
		},
	})
}

func (c *Collection[T]) logAttach(n graph.Node, reason string) {
	c.config.Logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  c.config.SessionID,
		Category:   log.CategorySubscription,
		EntityID:   n.Entity.ID(),
		EntityType: fmt.Sprintf("%T", n.Entity),
		Field:      n.Field,
		Subscription: &log.SubscriptionEvent{
			Action: log.SubscriptionAttach,
			Depth:  n.Depth,
			Reason: reason,
		},
	})
}

func (c *Collection[T]) logDetach(e model.Entity, reason string) {
	c.config.Logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  c.config.SessionID,
		Category:   log.CategorySubscription,
		EntityID:   e.ID(),
		EntityType: fmt.Sprintf("%T", e),
		Subscription: &log.SubscriptionEvent{
			Action: log.SubscriptionDetach,
			Reason: reason,
		},
	})
}

func (c *Collection[T]) logRelay(n Notification) {
	chain := make([]string, len(n.Chain))
	for i, hop := range n.Chain {
		chain[i] = hop.Entity.ID()
	}
	c.config.Logger.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  c.config.SessionID,
		Category:   log.CategoryRelay,
		EntityID:   n.Entity.ID(),
		EntityType: fmt.Sprintf("%T", n.Entity),
		Field:      n.Field,
		Relay: &log.RelayEvent{
			Chain:  chain,
			Rewalk: n.Rewalk,
		},
	})
}

// isNil reports whether e is nil or a nil pointer.
func isNil(e model.Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
