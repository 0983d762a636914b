// Package scenario loads YAML scenario files that seed a collection of
// orders and drive it through a sequence of steps.
//
// A scenario looks like:
//
//	name: replace-items
//	orders:
//	  - label: Order B1
//	    item: { name: Item C1, cost: 10 }
//	  - label: Order B2
//	    shareItemWith: 0
//	steps:
//	  - set: 0.Item.Cost
//	    value: "15"
//	    expect: { sum: 30 }
//	  - replace: all
//	    expect: { sum: 0, subscribed: 4 }
//
// Each step performs at most one operation and then checks its optional
// expectations against the running sum, the member count, the size of the
// subscription set and the number of notifications the step produced.
package scenario
