package scenario

import (
	"fmt"
	"io"
	"strconv"

	"github.com/graphwatch/graphwatch-go/pkg/aggregate"
	"github.com/graphwatch/graphwatch-go/pkg/catalog"
	"github.com/graphwatch/graphwatch-go/pkg/collection"
	"github.com/graphwatch/graphwatch-go/pkg/inspect"
)

// Runner applies steps to a collection of orders and keeps a running cost sum.
type Runner struct {
	c         *collection.Collection[*catalog.Order]
	sum       *aggregate.Sum[*catalog.Order]
	inspector *inspect.Inspector[*catalog.Order]
	counter   *collection.ObserverFuncs[*catalog.Order]
	out       io.Writer

	notifications int
}

// StepResult is the outcome of one step.
type StepResult struct {
	Index         int
	Step          string
	Sum           int64
	Notifications int
	Err           error
}

// Passed returns true if the step succeeded.
func (r StepResult) Passed() bool {
	return r.Err == nil
}

// Result is the outcome of a scenario run.
type Result struct {
	Name  string
	Steps []StepResult
}

// Passed returns true if every step succeeded.
func (r *Result) Passed() bool {
	for _, s := range r.Steps {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// NewRunner attaches a cost sum to c. Progress is written to out, which may
// be nil.
func NewRunner(c *collection.Collection[*catalog.Order], out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	r := &Runner{
		c:         c,
		inspector: inspect.NewInspector(c),
		out:       out,
	}
	r.counter = &collection.ObserverFuncs[*catalog.Order]{
		EntityChanged: func(collection.Notification) { r.notifications++ },
	}
	c.Subscribe(r.counter)
	r.sum = aggregate.NewSum(c, catalog.Cost, catalog.LineItemFieldCost, catalog.OrderFieldItem)
	return r
}

// Collection returns the collection driven by the runner.
func (r *Runner) Collection() *collection.Collection[*catalog.Order] {
	return r.c
}

// Sum returns the running cost sum.
func (r *Runner) Sum() *aggregate.Sum[*catalog.Order] {
	return r.sum
}

// Inspector returns an inspector over the runner's collection.
func (r *Runner) Inspector() *inspect.Inspector[*catalog.Order] {
	return r.inspector
}

// Close detaches the runner from its collection.
func (r *Runner) Close() {
	r.sum.Close()
	r.c.Unsubscribe(r.counter)
}

// Run applies every step of s in order and stops at the first failure.
func (r *Runner) Run(s *Scenario) *Result {
	result := &Result{Name: s.Name}
	for i, step := range s.Steps {
		sr := r.Apply(step)
		sr.Index = i
		result.Steps = append(result.Steps, sr)

		status := "PASS"
		if !sr.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(r.out, "[%s] %d: %s (sum %d)\n", status, i, sr.Step, sr.Sum)
		if !sr.Passed() {
			fmt.Fprintf(r.out, "       %v\n", sr.Err)
			break
		}
	}
	return result
}

// Apply performs a single step and checks its expectations.
func (r *Runner) Apply(step Step) StepResult {
	before := r.notifications
	err := r.perform(step)
	sr := StepResult{
		Step:          step.String(),
		Sum:           r.sum.Value(),
		Notifications: r.notifications - before,
	}
	if err == nil {
		err = r.check(step.Expect, sr.Notifications)
	}
	sr.Err = err
	return sr
}

func (r *Runner) perform(step Step) error {
	switch {
	case step.Set != "":
		p, err := inspect.ParsePath(step.Set)
		if err != nil {
			return err
		}
		return r.inspector.Write(p, step.Value)

	case step.Replace == "all":
		for _, o := range r.c.Items() {
			catalog.ReplaceItem(o)
		}
		return nil

	case step.Replace != "":
		i, err := strconv.Atoi(step.Replace)
		if err != nil {
			return fmt.Errorf("replace: %w", err)
		}
		o, err := r.c.At(i)
		if err != nil {
			return err
		}
		catalog.ReplaceItem(o)
		return nil

	case step.Add != nil:
		return r.c.Add(step.Add.build())

	case step.Remove != nil:
		_, err := r.c.RemoveAt(*step.Remove)
		return err

	case len(step.Move) == 2:
		return r.c.Move(step.Move[0], step.Move[1])

	case step.Clear:
		r.c.Clear()
		return nil
	}
	return nil
}

func (r *Runner) check(e *Expect, notifications int) error {
	if e == nil {
		return nil
	}
	if e.Sum != nil && *e.Sum != r.sum.Value() {
		return fmt.Errorf("%w: sum = %d, want %d", ErrExpectation, r.sum.Value(), *e.Sum)
	}
	if e.Members != nil && *e.Members != r.c.Len() {
		return fmt.Errorf("%w: members = %d, want %d", ErrExpectation, r.c.Len(), *e.Members)
	}
	if e.Subscribed != nil && *e.Subscribed != r.c.SubscribedCount() {
		return fmt.Errorf("%w: subscribed = %d, want %d", ErrExpectation, r.c.SubscribedCount(), *e.Subscribed)
	}
	if e.Notifications != nil && *e.Notifications != notifications {
		return fmt.Errorf("%w: notifications = %d, want %d", ErrExpectation, notifications, *e.Notifications)
	}
	return nil
}
