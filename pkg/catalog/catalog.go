// Package catalog holds the example entities used by the demo: orders that
// each reference one priced line item.
package catalog

//go:generate go run ../../cmd/graphwatch-gen -defs catalog.yaml -output catalog_gen.go

import (
	"fmt"
	"strings"
)

// NewLineItem creates a line item with the given name and cost.
func NewLineItem(name string, cost int64) *LineItem {
	return &LineItem{name: name, cost: cost}
}

// NewOrder creates an order holding item.
func NewOrder(label string, item *LineItem) *Order {
	return &Order{label: label, item: item}
}

// Seed creates n orders whose items are named "Item C1" to "Item Cn".
func Seed(n int) []*Order {
	orders := make([]*Order, n)
	for i := range orders {
		orders[i] = NewOrder(fmt.Sprintf("Order B%d", i+1), NewLineItem(fmt.Sprintf("Item C%d", i+1), 0))
	}
	return orders
}

// ReplaceItem gives o a fresh line item named after the current one, with
// "Item C" replaced by "Replace C". The cost and currency start at zero.
// Returns the new item.
func ReplaceItem(o *Order) *LineItem {
	name := "Error"
	if o.item != nil {
		name = strings.ReplaceAll(o.item.name, "Item C", "Replace C")
	}
	item := NewLineItem(name, 0)
	o.SetItem(item)
	return item
}

// Cost returns the cost of the order's item, or zero if it has none.
func Cost(o *Order) int64 {
	if o.item == nil {
		return 0
	}
	return o.item.cost
}
