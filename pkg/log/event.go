package log

import (
	"time"
)

// Event represents a collection log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the collection that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// EntityID is the display label of the entity concerned, if any.
	EntityID string `cbor:"4,keyasint,omitempty"`

	// EntityType is the Go type name of the entity concerned, if any.
	EntityType string `cbor:"5,keyasint,omitempty"`

	// Field is the field name concerned, if any.
	Field string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Subscription *SubscriptionEvent `cbor:"10,keyasint,omitempty"`
	Relay        *RelayEvent        `cbor:"11,keyasint,omitempty"`
	Collection   *CollectionEvent   `cbor:"12,keyasint,omitempty"`
	Error        *ErrorEventData    `cbor:"13,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategorySubscription indicates a relay handler was attached or detached.
	CategorySubscription Category = 0
	// CategoryRelay indicates a descendant change was re-emitted.
	CategoryRelay Category = 1
	// CategoryCollection indicates a membership change.
	CategoryCollection Category = 2
	// CategoryError indicates a skipped field or other recoverable fault.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategorySubscription:
		return "SUBSCRIPTION"
	case CategoryRelay:
		return "RELAY"
	case CategoryCollection:
		return "COLLECTION"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SubscriptionAction distinguishes attach from detach.
type SubscriptionAction uint8

const (
	// SubscriptionAttach indicates the relay handler was registered.
	SubscriptionAttach SubscriptionAction = 0
	// SubscriptionDetach indicates the relay handler was removed.
	SubscriptionDetach SubscriptionAction = 1
)

// String returns the action name.
func (a SubscriptionAction) String() string {
	switch a {
	case SubscriptionAttach:
		return "ATTACH"
	case SubscriptionDetach:
		return "DETACH"
	default:
		return "UNKNOWN"
	}
}

// SubscriptionEvent captures a change to the subscription set.
type SubscriptionEvent struct {
	// Action is attach or detach.
	Action SubscriptionAction `cbor:"1,keyasint"`

	// Depth is the number of edges from the nearest root (attach only).
	Depth int `cbor:"2,keyasint,omitempty"`

	// Reason names the operation that triggered the change
	// (add, remove, replace, move, clear, rewalk).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// RelayEvent captures a descendant change re-emitted by the collection.
type RelayEvent struct {
	// Chain lists entity IDs from the changed entity up to its root.
	Chain []string `cbor:"1,keyasint,omitempty"`

	// Rewalk is true if the change triggered a reachability re-walk.
	Rewalk bool `cbor:"2,keyasint,omitempty"`
}

// CollectionAction identifies a membership change.
type CollectionAction uint8

const (
	// CollectionAdd indicates a member was added or inserted.
	CollectionAdd CollectionAction = 0
	// CollectionRemove indicates a member was removed.
	CollectionRemove CollectionAction = 1
	// CollectionReplace indicates a member was replaced in place.
	CollectionReplace CollectionAction = 2
	// CollectionMove indicates a member changed position.
	CollectionMove CollectionAction = 3
	// CollectionClear indicates all members were removed.
	CollectionClear CollectionAction = 4
)

// String returns the action name.
func (a CollectionAction) String() string {
	switch a {
	case CollectionAdd:
		return "ADD"
	case CollectionRemove:
		return "REMOVE"
	case CollectionReplace:
		return "REPLACE"
	case CollectionMove:
		return "MOVE"
	case CollectionClear:
		return "CLEAR"
	default:
		return "UNKNOWN"
	}
}

// CollectionEvent captures a membership change.
type CollectionEvent struct {
	// Action is the kind of membership change.
	Action CollectionAction `cbor:"1,keyasint"`

	// Index is the affected position (-1 when not applicable).
	Index int `cbor:"2,keyasint"`

	// Members is the member count after the change.
	Members int `cbor:"3,keyasint"`

	// Subscribed is the size of the subscription set after the change.
	Subscribed int `cbor:"4,keyasint"`
}

// ErrorEventData captures recoverable faults.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
