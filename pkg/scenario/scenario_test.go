package scenario

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphwatch/graphwatch-go/pkg/catalog"
	"github.com/graphwatch/graphwatch-go/pkg/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFile(t *testing.T, name string) (*Result, string) {
	t.Helper()
	s, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	c, err := collection.From(s.Build(), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewRunner(c, &out)
	return r.Run(s), out.String()
}

func TestRunReplaceScenario(t *testing.T) {
	result, out := runFile(t, "replace.yaml")

	for _, s := range result.Steps {
		assert.NoError(t, s.Err, "step %d: %s", s.Index, s.Step)
	}
	assert.True(t, result.Passed())
	assert.Len(t, result.Steps, 10)
	assert.Contains(t, out, "[PASS] 1: set 1.Item.Cost 25 (sum 65)")
	assert.Contains(t, out, "[PASS] 2: same value is silent (sum 65)")
}

func TestRunSharedScenario(t *testing.T) {
	result, _ := runFile(t, "shared.yaml")
	for _, s := range result.Steps {
		assert.NoError(t, s.Err, "step %d: %s", s.Index, s.Step)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	s, err := Parse([]byte(`
name: failing
orders:
  - label: A
    item: { name: a, cost: 1 }
steps:
  - expect: { sum: 2 }
  - clear: true
`))
	require.NoError(t, err)
	c, err := collection.From(s.Build(), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	result := NewRunner(c, &out).Run(s)

	require.Len(t, result.Steps, 1)
	assert.False(t, result.Passed())
	assert.ErrorIs(t, result.Steps[0].Err, ErrExpectation)
	assert.Contains(t, out.String(), "[FAIL] 0: check (sum 1)")
	assert.Equal(t, 1, c.Len(), "clear never ran")
}

func TestApplyErrors(t *testing.T) {
	c, err := collection.From(catalog.Seed(2), nil)
	require.NoError(t, err)
	r := NewRunner(c, nil)

	five := 5
	tests := []struct {
		name string
		step Step
	}{
		{"bad path", Step{Set: "x.Item", Value: "1"}},
		{"bad value", Step{Set: "0.Item.Cost", Value: "abc"}},
		{"bad replace", Step{Replace: "first"}},
		{"replace out of range", Step{Replace: "7"}},
		{"remove out of range", Step{Remove: &five}},
		{"move out of range", Step{Move: []int{0, 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, r.Apply(tt.step).Err)
		})
	}
}

func TestRunnerClose(t *testing.T) {
	orders := catalog.Seed(1)
	c, err := collection.From(orders, nil)
	require.NoError(t, err)
	r := NewRunner(c, nil)
	r.Close()

	orders[0].Item().SetCost(3)
	assert.Equal(t, int64(0), r.Sum().Value())
}

func TestBuildSharesItems(t *testing.T) {
	s, err := Parse([]byte(`
orders:
  - label: A
    item: { name: a, cost: 1, currency: 978 }
  - label: B
    shareItemWith: 0
  - label: C
`))
	require.NoError(t, err)

	orders := s.Build()
	require.Len(t, orders, 3)
	assert.Same(t, orders[0].Item(), orders[1].Item())
	assert.Equal(t, int64(978), orders[0].Item().Currency())
	assert.Nil(t, orders[2].Item())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "orders: [", "failed to parse YAML"},
		{"forward share", "orders:\n  - label: A\n    shareItemWith: 1\n  - label: B\n", "must name an earlier order"},
		{"share and item", "orders:\n  - label: A\n  - label: B\n    shareItemWith: 0\n    item: { name: b }\n", "exclusive"},
		{"two ops", "steps:\n  - clear: true\n    replace: all\n", "more than one operation"},
		{"share in add", "steps:\n  - add: { label: X, shareItemWith: 0 }\n", "only valid in orders"},
		{"bad move", "steps:\n  - move: [1]\n", "move needs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "testdata/missing.yaml", le.File)
	assert.True(t, strings.HasPrefix(err.Error(), "testdata/missing.yaml: failed to read file"))
}

func TestStepString(t *testing.T) {
	two := 2
	assert.Equal(t, "set 0.Item.Cost 5", Step{Set: "0.Item.Cost", Value: "5"}.String())
	assert.Equal(t, "replace all", Step{Replace: "all"}.String())
	assert.Equal(t, `add "X"`, Step{Add: &OrderDef{Label: "X"}}.String())
	assert.Equal(t, "remove 2", Step{Remove: &two}.String())
	assert.Equal(t, "move 2 0", Step{Move: []int{2, 0}}.String())
	assert.Equal(t, "clear", Step{Clear: true}.String())
	assert.Equal(t, "named", Step{Name: "named", Clear: true}.String())
}
