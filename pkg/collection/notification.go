package collection

import (
	"strings"

	"github.com/graphwatch/graphwatch-go/pkg/log"
	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// Hop is one step of a notification's containment chain.
type Hop struct {
	// Entity is the entity at this step.
	Entity model.Entity

	// Field is the field of Entity that changed (first hop) or that holds
	// the previous hop's entity (later hops).
	Field string
}

// Notification is a descendant change re-emitted by a collection.
// It is created once when the raw change is intercepted and never modified.
type Notification struct {
	// Field is the name of the changed field.
	Field string

	// Entity is the entity whose field changed.
	Entity model.Entity

	// Chain lists the containment path from the changed entity (first) up to
	// the collection member that reaches it (last). When an entity is
	// reachable through several paths, the first one found by the walk is used.
	// Every observer receives its own copy.
	Chain []Hop

	// Rewalk is true if the change replaced a child reference and the
	// collection recomputed its subscription set before relaying it.
	Rewalk bool
}

// Root returns the collection member the changed entity was reached from.
func (n Notification) Root() model.Entity {
	if len(n.Chain) == 0 {
		return n.Entity
	}
	return n.Chain[len(n.Chain)-1].Entity
}

// Depth returns the number of containment edges between the member and the
// changed entity.
func (n Notification) Depth() int {
	if len(n.Chain) == 0 {
		return 0
	}
	return len(n.Chain) - 1
}

// Path returns the field path from the member to the changed field,
// e.g. "Item.Cost".
func (n Notification) Path() string {
	if len(n.Chain) == 0 {
		return n.Field
	}
	parts := make([]string, len(n.Chain))
	for i, hop := range n.Chain {
		parts[len(n.Chain)-1-i] = hop.Field
	}
	return strings.Join(parts, ".")
}

// Action identifies a membership change.
type Action uint8

const (
	// ActionAdd indicates members were added or inserted.
	ActionAdd Action = iota
	// ActionRemove indicates members were removed.
	ActionRemove
	// ActionReplace indicates a member was replaced in place.
	ActionReplace
	// ActionMove indicates a member changed position.
	ActionMove
	// ActionReset indicates the collection was cleared.
	ActionReset
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionReplace:
		return "replace"
	case ActionMove:
		return "move"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

func (a Action) logAction() log.CollectionAction {
	switch a {
	case ActionRemove:
		return log.CollectionRemove
	case ActionReplace:
		return log.CollectionReplace
	case ActionMove:
		return log.CollectionMove
	case ActionReset:
		return log.CollectionClear
	default:
		return log.CollectionAdd
	}
}

// Change describes a membership change.
type Change[T model.Entity] struct {
	// Action is the kind of change.
	Action Action

	// NewItems are the members added (add, replace, move).
	NewItems []T

	// OldItems are the members removed (remove, replace, move, reset).
	OldItems []T

	// NewIndex is the position of NewItems, -1 if none.
	NewIndex int

	// OldIndex is the former position of OldItems, -1 if none.
	OldIndex int
}

// Observer receives a collection's aggregated event stream.
// Observers are compared by identity; use pointer types.
type Observer[T model.Entity] interface {
	// OnEntityChanged is called when any reachable entity changes a field.
	OnEntityChanged(n Notification)

	// OnCollectionChanged is called when the member list changes.
	OnCollectionChanged(c Change[T])
}

// ObserverFuncs adapts functions to the Observer interface.
// Nil functions are skipped.
type ObserverFuncs[T model.Entity] struct {
	EntityChanged     func(Notification)
	CollectionChanged func(Change[T])
}

// OnEntityChanged calls EntityChanged.
func (o *ObserverFuncs[T]) OnEntityChanged(n Notification) {
	if o.EntityChanged != nil {
		o.EntityChanged(n)
	}
}

// OnCollectionChanged calls CollectionChanged.
func (o *ObserverFuncs[T]) OnCollectionChanged(c Change[T]) {
	if o.CollectionChanged != nil {
		o.CollectionChanged(c)
	}
}
