// Package aggregate provides consumers that derive values from a
// collection's event stream.
//
// A Sum recomputes an int64 total whenever a watched field changes anywhere
// in the collection's graph or the membership changes. The Sum is itself an
// entity: it fires "Sum" when the total changes, so it can be observed or
// placed in another collection.
package aggregate
