// Package collection implements an ordered collection of root entities that
// aggregates change notifications from every entity reachable from its members.
//
// # Subscription Set
//
// The collection registers a single relay handler on every entity reachable
// from any member, exactly once per entity regardless of how many paths lead
// to it. An entity is subscribed if and only if it is reachable:
//   - Add, Insert and Replace subscribe the new member's subtree.
//   - Remove, RemoveAt and Replace unsubscribe entities no longer reachable
//     from any remaining member. Shared descendants stay subscribed.
//   - Clear unsubscribes everything.
//
// # Re-walk on Replacement
//
// When a subscribed entity reports a change to one of its entity-typed
// fields, the collection walks all members again before relaying the change.
// A replacement child is subscribed and the previous child, if no longer
// reachable, is unsubscribed. Observers therefore always see a subscription
// set consistent with the current graph.
//
// # Notifications
//
// Observers receive two kinds of events:
//   - Notification: a descendant field changed. It names the field, the
//     entity that changed, and the containment chain up to the member.
//   - Change: the member list changed (add, remove, replace, move, clear).
//
// # Threading
//
// A collection is driven by one goroutine. Entity setters notify
// synchronously, so every re-walk and relay completes before the setter
// returns. Concurrent mutation of the same collection is not supported.
package collection
