package scenario

import (
	"fmt"
	"os"

	"github.com/graphwatch/graphwatch-go/pkg/catalog"
	"gopkg.in/yaml.v3"
)

// Parse parses a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load loads a scenario from a file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	s, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return s, nil
}

// Build creates the scenario's orders.
func (s *Scenario) Build() []*catalog.Order {
	orders := make([]*catalog.Order, len(s.Orders))
	for i, def := range s.Orders {
		if def.ShareItemWith != nil {
			orders[i] = catalog.NewOrder(def.Label, orders[*def.ShareItemWith].Item())
			continue
		}
		orders[i] = def.build()
	}
	return orders
}

func (def OrderDef) build() *catalog.Order {
	o := catalog.NewOrder(def.Label, nil)
	if def.Item != nil {
		item := catalog.NewLineItem(def.Item.Name, def.Item.Cost)
		item.SetCurrency(def.Item.Currency)
		o.SetItem(item)
	}
	return o
}

func (s *Scenario) validate() error {
	for i, def := range s.Orders {
		if def.ShareItemWith == nil {
			continue
		}
		if j := *def.ShareItemWith; j < 0 || j >= i {
			return &LoadError{Message: fmt.Sprintf("order %d: shareItemWith %d must name an earlier order", i, j)}
		}
		if def.Item != nil {
			return &LoadError{Message: fmt.Sprintf("order %d: item and shareItemWith are exclusive", i)}
		}
	}

	for i, step := range s.Steps {
		if step.ops() > 1 {
			return &LoadError{Message: fmt.Sprintf("step %d: more than one operation", i)}
		}
		if step.Add != nil && step.Add.ShareItemWith != nil {
			return &LoadError{Message: fmt.Sprintf("step %d: shareItemWith is only valid in orders", i)}
		}
		if len(step.Move) != 0 && len(step.Move) != 2 {
			return &LoadError{Message: fmt.Sprintf("step %d: move needs [from, to]", i)}
		}
	}
	return nil
}
