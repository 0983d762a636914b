// Package persistence saves and restores the orders of a collection.
//
// State is stored as JSON. Line items shared by several orders are written
// once and referenced by the index of the first order holding them, so a
// restored collection has the same sharing as the saved one.
package persistence
