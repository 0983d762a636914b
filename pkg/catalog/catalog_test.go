package catalog

import (
	"testing"

	"github.com/graphwatch/graphwatch-go/pkg/graph"
	"github.com/graphwatch/graphwatch-go/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSuppressesEqualValues(t *testing.T) {
	item := NewLineItem("Item C1", 5)
	var got []string
	item.Subscribe(model.NewListener(func(c model.FieldChange) { got = append(got, c.Field) }))

	assert.False(t, item.SetCost(5))
	assert.True(t, item.SetCost(6))
	assert.True(t, item.SetCurrency(978))
	assert.False(t, item.SetName("Item C1"))

	assert.Equal(t, []string{LineItemFieldCost, LineItemFieldCurrency}, got)
}

func TestOrderShape(t *testing.T) {
	o := NewOrder("B", NewLineItem("C", 1))

	children := model.ChildFields(o)
	require.Len(t, children, 1)
	assert.Equal(t, OrderFieldItem, children[0].Name)

	nodes := graph.Walker{}.Nodes(o)
	require.Len(t, nodes, 2)
	assert.Same(t, o.Item(), nodes[1].Entity)
	assert.Equal(t, OrderFieldItem, nodes[1].Field)
}

func TestFieldDescriptorsWrite(t *testing.T) {
	o := NewOrder("B", nil)
	item := NewLineItem("C", 0)

	f, err := model.Lookup(o, OrderFieldItem)
	require.NoError(t, err)
	require.NoError(t, model.Write(f, item))
	assert.Same(t, item, o.Item())

	require.NoError(t, model.Write(f, nil))
	assert.Nil(t, o.Item())

	cost, err := model.Lookup(item, LineItemFieldCost)
	require.NoError(t, err)
	require.NoError(t, model.Write(cost, int64(12)))
	assert.Equal(t, int64(12), item.Cost())

	assert.ErrorIs(t, model.Write(cost, "twelve"), model.ErrFieldValueType)
}

func TestSeed(t *testing.T) {
	orders := Seed(3)
	require.Len(t, orders, 3)
	assert.Equal(t, "Order B1", orders[0].Label())
	assert.Equal(t, "Item C3", orders[2].Item().Name())
	assert.NotSame(t, orders[0].Item(), orders[1].Item())
}

func TestReplaceItem(t *testing.T) {
	o := Seed(1)[0]
	o.Item().SetCost(40)
	old := o.Item()

	fresh := ReplaceItem(o)

	assert.NotSame(t, old, fresh)
	assert.Same(t, fresh, o.Item())
	assert.Equal(t, "Replace C1", fresh.Name())
	assert.Equal(t, int64(0), Cost(o))

	empty := NewOrder("x", nil)
	assert.Equal(t, "Error", ReplaceItem(empty).Name())
}

func TestCost(t *testing.T) {
	assert.Equal(t, int64(0), Cost(NewOrder("x", nil)))
	assert.Equal(t, int64(7), Cost(NewOrder("x", NewLineItem("c", 7))))
}
