// Package interactive provides the interactive command-line interface
// for graphwatch-demo.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/graphwatch/graphwatch-go/pkg/inspect"
	"github.com/graphwatch/graphwatch-go/pkg/model"
	"github.com/graphwatch/graphwatch-go/pkg/persistence"
	"github.com/graphwatch/graphwatch-go/pkg/scenario"
)

// ErrQuit is returned by Execute when the user asks to leave the shell.
var ErrQuit = errors.New("quit")

// Shell drives a scenario runner from typed commands.
type Shell struct {
	runner    *scenario.Runner
	formatter *inspect.Formatter
	out       io.Writer
	rl        *readline.Instance
	store     *persistence.StateStore

	sumListener *model.Listener
	lastSum     int64
}

// New creates a shell reading commands from the terminal.
func New(runner *scenario.Runner) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "graphwatch> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := NewShell(runner, rl.Stdout())
	s.rl = rl
	return s, nil
}

// NewShell creates a shell that writes to out. Commands are fed through
// Execute.
func NewShell(runner *scenario.Runner, out io.Writer) *Shell {
	s := &Shell{
		runner:    runner,
		formatter: inspect.NewFormatter(),
		out:       out,
		lastSum:   runner.Sum().Value(),
	}

	// Report every change of the running sum as it happens.
	s.sumListener = model.NewListener(func(model.FieldChange) {
		v := runner.Sum().Value()
		fmt.Fprintf(s.out, "  sum %d -> %d\n", s.lastSum, v)
		s.lastSum = v
	})
	runner.Sum().Subscribe(s.sumListener)
	return s
}

// SetStateStore enables the save command.
func (s *Shell) SetStateStore(store *persistence.StateStore) {
	s.store = store
}

// Stdout returns a writer that coordinates with the readline input.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Close detaches the shell from the runner.
func (s *Shell) Close() {
	s.runner.Sum().Unsubscribe(s.sumListener)
	if s.rl != nil {
		s.rl.Close()
	}
}

// Run starts the interactive command loop. It returns when the user quits
// or input ends.
func (s *Shell) Run() {
	defer s.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}

		if err := s.Execute(line); errors.Is(err, ErrQuit) {
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
	}
}

// Execute runs one command line. Command errors are printed, not returned;
// the only error returned is ErrQuit.
func (s *Shell) Execute(line string) error {
	input := strings.TrimSpace(line)
	if input == "" {
		return nil
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "list", "ls", "tree":
		s.cmdList()

	case "get", "read", "r":
		s.cmdGet(args)

	case "set", "write", "w":
		s.cmdSet(args)

	case "replace":
		s.cmdReplace(args)

	case "add":
		s.cmdAdd(args)

	case "remove", "rm":
		s.cmdRemove(args)

	case "move", "mv":
		s.cmdMove(args)

	case "clear":
		s.apply(scenario.Step{Clear: true})

	case "sum":
		sum := s.runner.Sum()
		fmt.Fprintf(s.out, "Sum = %d (recomputed %d times)\n", sum.Value(), sum.Recomputes())

	case "subs", "subscribed":
		s.cmdSubscribed()

	case "save":
		s.cmdSave()

	case "ids":
		s.formatter.ShowIDs = !s.formatter.ShowIDs
		fmt.Fprintf(s.out, "Show IDs: %v\n", s.formatter.ShowIDs)

	case "quit", "exit", "q":
		return ErrQuit

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return nil
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
graphwatch Commands:
  Inspection:
    list                 - Show every order and the entities it reaches
    get <path>           - Show an order, an entity or a field value
    sum                  - Show the running cost sum
    subs                 - List subscribed entities
    ids                  - Toggle entity IDs in output
    save                 - Save the orders to the state file

  Changes:
    set <path> <value>   - Write a field, e.g. set 0.Item.Cost 10
    replace <i>|all      - Give an order (or every order) a fresh line item
    add <label> [name cost] - Append an order, optionally with a line item
    remove <i>           - Remove the order at index i
    move <from> <to>     - Move an order
    clear                - Remove every order

  General:
    help                 - Show this help
    quit                 - Exit

  Path Format:
    index.field.field    - e.g. 0, 0.Item or 0.Item.Cost (case-insensitive)`)
}

// cmdList handles the list command.
func (s *Shell) cmdList() {
	insp := s.runner.Inspector()
	fmt.Fprint(s.out, insp.FormatTree(insp.Tree(), s.formatter))
}

// cmdGet handles the get command.
func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get <path>")
		fmt.Fprintln(s.out, "  Example: get 0.Item")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path: %v\n", err)
		return
	}

	insp := s.runner.Inspector()
	if path.IsPartial() {
		info, err := insp.InspectMember(path.Index)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprint(s.out, insp.FormatEntity(info, s.formatter))
		return
	}

	value, field, err := insp.Read(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	// Entity-valued fields are shown in full.
	if e, ok := value.(model.Entity); ok {
		info := insp.InspectEntity(e)
		fmt.Fprintf(s.out, "%s = ", field.Name)
		fmt.Fprint(s.out, insp.FormatEntity(&info, s.formatter))
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", field.Name, s.formatter.FormatValue(value))
}

// cmdSet handles the set command.
func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <path> <value>")
		fmt.Fprintln(s.out, "  Example: set 0.Item.Cost 10")
		return
	}
	s.apply(scenario.Step{Set: args[0], Value: strings.Join(args[1:], " ")})
}

// cmdReplace handles the replace command.
func (s *Shell) cmdReplace(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: replace <index>|all")
		return
	}
	s.apply(scenario.Step{Replace: strings.ToLower(args[0])})
}

// cmdAdd handles the add command.
func (s *Shell) cmdAdd(args []string) {
	if len(args) != 1 && len(args) != 3 {
		fmt.Fprintln(s.out, "Usage: add <label> [item-name cost]")
		fmt.Fprintln(s.out, `  Example: add "Order X" "Item X" 7`)
		return
	}

	def := &scenario.OrderDef{Label: args[0]}
	if len(args) == 3 {
		cost, err := strconv.ParseInt(args[2], 0, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid cost: %v\n", err)
			return
		}
		def.Item = &scenario.ItemDef{Name: args[1], Cost: cost}
	}
	s.apply(scenario.Step{Add: def})
}

// cmdRemove handles the remove command.
func (s *Shell) cmdRemove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: remove <index>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid index: %v\n", err)
		return
	}
	s.apply(scenario.Step{Remove: &i})
}

// cmdMove handles the move command.
func (s *Shell) cmdMove(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: move <from> <to>")
		return
	}
	from, err1 := strconv.Atoi(args[0])
	to, err2 := strconv.Atoi(args[1])
	if err := errors.Join(err1, err2); err != nil {
		fmt.Fprintf(s.out, "Invalid index: %v\n", err)
		return
	}
	s.apply(scenario.Step{Move: []int{from, to}})
}

// cmdSubscribed handles the subs command.
func (s *Shell) cmdSubscribed() {
	c := s.runner.Collection()
	subscribed := c.Subscribed()
	fmt.Fprintf(s.out, "Subscribed entities: %d\n", len(subscribed))
	for _, e := range subscribed {
		fmt.Fprintf(s.out, "  %s\n", s.formatter.FormatEntityRef(e))
	}
	if n := c.Skipped(); n > 0 {
		fmt.Fprintf(s.out, "Skipped fields: %d\n", n)
	}
}

// cmdSave handles the save command.
func (s *Shell) cmdSave() {
	if s.store == nil {
		fmt.Fprintln(s.out, "No state file configured (start with -state <file>)")
		return
	}
	c := s.runner.Collection()
	if err := s.store.Save(persistence.Snapshot(c.SessionID(), c.Items())); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved %d orders to %s\n", c.Len(), s.store.Path())
}

// apply runs a step through the runner and reports the outcome.
func (s *Shell) apply(step scenario.Step) {
	r := s.runner.Apply(step)
	if !r.Passed() {
		fmt.Fprintf(s.out, "Error: %v\n", r.Err)
		return
	}
	fmt.Fprintf(s.out, "OK: %s (%d notifications, sum %d)\n", r.Step, r.Notifications, r.Sum)
}
