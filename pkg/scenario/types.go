package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExpectation is returned when a step's expectation does not hold.
var ErrExpectation = errors.New("expectation failed")

// Scenario is a seed collection plus the steps to run against it.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Orders      []OrderDef `yaml:"orders"`
	Steps       []Step     `yaml:"steps"`
}

// OrderDef describes one order.
type OrderDef struct {
	Label string   `yaml:"label"`
	Item  *ItemDef `yaml:"item,omitempty"`

	// ShareItemWith makes the order reference the item of an earlier order
	// instead of its own.
	ShareItemWith *int `yaml:"shareItemWith,omitempty"`
}

// ItemDef describes a line item.
type ItemDef struct {
	Name     string `yaml:"name"`
	Cost     int64  `yaml:"cost"`
	Currency int64  `yaml:"currency,omitempty"`
}

// Step is a single operation followed by optional checks.
type Step struct {
	Name string `yaml:"name,omitempty"`

	// Set writes Value to the field at this path (e.g. "0.Item.Cost").
	Set   string `yaml:"set,omitempty"`
	Value string `yaml:"value,omitempty"`

	// Replace gives the order at this index, or every order for "all",
	// a fresh line item.
	Replace string `yaml:"replace,omitempty"`

	// Add appends a new order.
	Add *OrderDef `yaml:"add,omitempty"`

	// Remove removes the order at this index.
	Remove *int `yaml:"remove,omitempty"`

	// Move relocates an order: [from, to].
	Move []int `yaml:"move,omitempty"`

	// Clear removes every order.
	Clear bool `yaml:"clear,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect lists the checks run after a step. Nil fields are not checked.
type Expect struct {
	Sum           *int64 `yaml:"sum,omitempty"`
	Members       *int   `yaml:"members,omitempty"`
	Subscribed    *int   `yaml:"subscribed,omitempty"`
	Notifications *int   `yaml:"notifications,omitempty"`
}

// String returns a one-line description of the step.
func (s Step) String() string {
	if s.Name != "" {
		return s.Name
	}
	switch {
	case s.Set != "":
		return fmt.Sprintf("set %s %s", s.Set, s.Value)
	case s.Replace != "":
		return "replace " + s.Replace
	case s.Add != nil:
		return fmt.Sprintf("add %q", s.Add.Label)
	case s.Remove != nil:
		return fmt.Sprintf("remove %d", *s.Remove)
	case len(s.Move) > 0:
		parts := make([]string, len(s.Move))
		for i, v := range s.Move {
			parts[i] = fmt.Sprint(v)
		}
		return "move " + strings.Join(parts, " ")
	case s.Clear:
		return "clear"
	default:
		return "check"
	}
}

// ops returns the number of operations the step names.
func (s Step) ops() int {
	n := 0
	for _, set := range []bool{s.Set != "", s.Replace != "", s.Add != nil, s.Remove != nil, len(s.Move) > 0, s.Clear} {
		if set {
			n++
		}
	}
	return n
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
