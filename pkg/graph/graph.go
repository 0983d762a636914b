package graph

import (
	"errors"
	"fmt"

	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// ErrNotEntity is reported when an entity-typed field holds a non-entity value.
var ErrNotEntity = errors.New("field value is not an entity")

// Set is a set of entities keyed by identity.
type Set map[model.Entity]struct{}

// NewSet creates a set holding the given entities.
func NewSet(entities ...model.Entity) Set {
	s := make(Set, len(entities))
	for _, e := range entities {
		s.Add(e)
	}
	return s
}

// Add inserts e. Returns false if e was already present.
func (s Set) Add(e model.Entity) bool {
	if _, ok := s[e]; ok {
		return false
	}
	s[e] = struct{}{}
	return true
}

// Has returns true if e is present.
func (s Set) Has(e model.Entity) bool {
	_, ok := s[e]
	return ok
}

// Remove deletes e.
func (s Set) Remove(e model.Entity) {
	delete(s, e)
}

// Len returns the number of entities in the set.
func (s Set) Len() int { return len(s) }

// Node is an entity discovered by a walk, with the edge it was first reached by.
type Node struct {
	// Entity is the discovered entity.
	Entity model.Entity

	// Parent is the entity holding the edge, nil for a root.
	Parent model.Entity

	// Field is the name of the edge on Parent, empty for a root.
	Field string

	// Depth is the number of edges from the root.
	Depth int
}

// FieldError describes a field skipped during a walk.
type FieldError struct {
	Entity model.Entity
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s of %s: %v", e.Field, e.Entity.ID(), e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// SkipFunc receives fields that were skipped because they could not be read.
type SkipFunc func(err *FieldError)

// Walker enumerates reachable entities.
// The zero value is ready to use and silently skips malformed fields.
type Walker struct {
	// OnSkip is called for every skipped field. May be nil.
	OnSkip SkipFunc
}

// Walk visits every entity reachable from roots exactly once, in pre-order
// following declared field order. Entities already in visited are neither
// reported nor descended into. visited is updated in place; nil starts empty.
func (w Walker) Walk(roots []model.Entity, visited Set, visit func(Node)) {
	if visited == nil {
		visited = make(Set)
	}

	stack := make([]Node, 0, 32)
	for _, root := range roots {
		if root == nil {
			continue
		}
		stack = append(stack[:0], Node{Entity: root})

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !visited.Add(current.Entity) {
				continue
			}
			visit(current)

			children := w.children(current)
			for i := len(children) - 1; i >= 0; i-- {
				if !visited.Has(children[i].Entity) {
					stack = append(stack, children[i])
				}
			}
		}
	}
}

// children returns the non-nil entities directly referenced by n.Entity.
func (w Walker) children(n Node) []Node {
	fields, err := model.SafeFields(n.Entity)
	if err != nil {
		w.skip(&FieldError{Entity: n.Entity, Field: "*", Err: err})
		return nil
	}

	var out []Node
	for _, f := range fields {
		if !f.IsEntity() {
			continue
		}
		v, err := model.Read(f)
		if err != nil {
			w.skip(&FieldError{Entity: n.Entity, Field: f.Name, Err: err})
			continue
		}
		if v == nil {
			continue
		}
		child, ok := v.(model.Entity)
		if !ok {
			w.skip(&FieldError{Entity: n.Entity, Field: f.Name, Err: fmt.Errorf("%w: %T", ErrNotEntity, v)})
			continue
		}
		out = append(out, Node{
			Entity: child,
			Parent: n.Entity,
			Field:  f.Name,
			Depth:  n.Depth + 1,
		})
	}
	return out
}

func (w Walker) skip(err *FieldError) {
	if w.OnSkip != nil {
		w.OnSkip(err)
	}
}

// Nodes returns every node reachable from roots in visiting order.
func (w Walker) Nodes(roots ...model.Entity) []Node {
	var nodes []Node
	w.Walk(roots, nil, func(n Node) { nodes = append(nodes, n) })
	return nodes
}

// ReachableFrom returns e and every entity reachable from it that is not
// already in visited. visited is updated in place; nil starts empty.
func (w Walker) ReachableFrom(e model.Entity, visited Set) []model.Entity {
	var out []model.Entity
	w.Walk([]model.Entity{e}, visited, func(n Node) { out = append(out, n.Entity) })
	return out
}

// Walk visits every entity reachable from roots using a zero Walker.
func Walk(roots []model.Entity, visit func(Node)) {
	Walker{}.Walk(roots, nil, visit)
}

// Reachable returns e and every entity reachable from it.
func Reachable(e model.Entity) []model.Entity {
	return Walker{}.ReachableFrom(e, nil)
}

// ReachableFrom returns the entities reachable from e that are not in visited.
func ReachableFrom(e model.Entity, visited Set) []model.Entity {
	return Walker{}.ReachableFrom(e, visited)
}
