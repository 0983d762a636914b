// Package graph enumerates the entities reachable from a root.
//
// Reachability follows containment edges: readable fields declared with
// model.DataTypeEntity. Traversal is iterative and keyed by entity identity,
// so cycles (including a field that references its own entity) terminate and
// an entity reached through several paths is reported once.
//
// Nothing is cached. Field setters can add or remove edges at any time, so
// callers walk again whenever the topology may have changed.
//
// Malformed fields do not abort a walk. A field whose getter panics, or whose
// value is not an entity, is skipped and reported to the walker's SkipFunc.
package graph
