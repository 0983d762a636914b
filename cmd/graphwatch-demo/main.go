// Command graphwatch-demo keeps a running cost sum over a collection of
// orders while their line items are edited and replaced.
//
// Without flags it seeds three orders, sets a cost on each line item,
// replaces every line item and prints how the sum follows along.
//
// Usage:
//
//	graphwatch-demo [flags]
//
// Flags:
//
//	-orders int          Number of orders to seed (default 3)
//	-scenario string     Run a YAML scenario instead of the built-in demo
//	-event-log string    Write the subscription event trace to a file
//	-state string        Restore orders from, and save them to, a JSON state file
//	-log-level string    Log level: debug, info, warn, error (default "info")
//	-interactive         Start an interactive shell after setup
//
// Examples:
//
//	# Run the built-in demo
//	graphwatch-demo
//
//	# Run a scenario and keep its event trace
//	graphwatch-demo -scenario replace.yaml -event-log replace.glog
//
//	# Explore interactively with subscription traffic on the console
//	graphwatch-demo -interactive -log-level debug
//
//	# Keep orders across runs
//	graphwatch-demo -interactive -state orders.json
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/graphwatch/graphwatch-go/cmd/graphwatch-demo/interactive"
	"github.com/graphwatch/graphwatch-go/pkg/catalog"
	"github.com/graphwatch/graphwatch-go/pkg/collection"
	"github.com/graphwatch/graphwatch-go/pkg/log"
	"github.com/graphwatch/graphwatch-go/pkg/persistence"
	"github.com/graphwatch/graphwatch-go/pkg/scenario"
)

// Config holds the demo configuration.
type Config struct {
	Orders       int
	ScenarioFile string
	EventLog     string
	StateFile    string
	LogLevel     string
	Interactive  bool
}

var config Config

func init() {
	flag.IntVar(&config.Orders, "orders", 3, "Number of orders to seed")
	flag.StringVar(&config.ScenarioFile, "scenario", "", "Run a YAML scenario instead of the built-in demo")
	flag.StringVar(&config.EventLog, "event-log", "", "Write the subscription event trace to a file")
	flag.StringVar(&config.StateFile, "state", "", "Restore orders from, and save them to, a JSON state file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Interactive, "interactive", false, "Start an interactive shell after setup")
}

func main() {
	flag.Parse()

	if err := run(config, os.Stdout); err != nil {
		slog.Error("demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg Config, out io.Writer) error {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var sc *scenario.Scenario
	if cfg.ScenarioFile != "" {
		if sc, err = scenario.Load(cfg.ScenarioFile); err != nil {
			return err
		}
	}

	// Event trace: file and/or console
	var loggers []log.Logger
	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return fmt.Errorf("failed to open event log: %w", err)
		}
		defer fl.Close()
		loggers = append(loggers, fl)
		logger.Info("writing event log", slog.String("path", cfg.EventLog))
	}
	if level <= slog.LevelDebug {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	collCfg := collection.DefaultConfig()
	collCfg.Slog = logger
	if len(loggers) > 0 {
		collCfg.Logger = log.NewMultiLogger(loggers...)
	}
	c := collection.NewWithConfig[*catalog.Order](collCfg)

	var store *persistence.StateStore
	if cfg.StateFile != "" {
		store = persistence.NewStateStore(cfg.StateFile)
	}

	orders := catalog.Seed(cfg.Orders)
	switch {
	case sc != nil:
		orders = sc.Build()
	case store != nil:
		state, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}
		if state != nil {
			if orders, err = state.Restore(); err != nil {
				return fmt.Errorf("failed to restore state: %w", err)
			}
			logger.Info("restored orders",
				slog.String("path", cfg.StateFile),
				slog.Int("orders", len(orders)),
				slog.Time("saved_at", state.SavedAt))
		}
	}
	for _, o := range orders {
		if err := c.Add(o); err != nil {
			return err
		}
	}
	logger.Info("collection ready",
		slog.String("session", c.SessionID()),
		slog.Int("members", c.Len()),
		slog.Int("subscribed", c.SubscribedCount()))

	runner := scenario.NewRunner(c, out)
	defer runner.Close()

	switch {
	case cfg.Interactive:
		shell, err := interactive.New(runner)
		if err != nil {
			return err
		}
		if store != nil {
			shell.SetStateStore(store)
		}
		shell.Run()
		return nil

	case sc != nil:
		fmt.Fprintf(out, "Scenario: %s\n", sc.Name)
		result := runner.Run(sc)
		if !result.Passed() {
			return fmt.Errorf("scenario %q failed", sc.Name)
		}
		fmt.Fprintf(out, "Sum: %d\n", runner.Sum().Value())

	default:
		if err := demo(runner, out); err != nil {
			return err
		}
	}

	if store != nil {
		if err := store.Save(persistence.Snapshot(c.SessionID(), c.Items())); err != nil {
			return fmt.Errorf("failed to save state: %w", err)
		}
		logger.Info("saved orders", slog.String("path", cfg.StateFile), slog.Int("orders", c.Len()))
	}
	return nil
}

// demo prices every line item, replaces them all and prices the
// replacements, printing the tree and sum along the way.
func demo(runner *scenario.Runner, out io.Writer) error {
	shell := interactive.NewShell(runner, out)
	defer shell.Close()

	c := runner.Collection()
	commands := []string{"list", "sum"}
	for i := 0; i < c.Len(); i++ {
		commands = append(commands, fmt.Sprintf("set %d.Item.Cost %d", i, 10*(i+1)))
	}
	commands = append(commands, "replace all", "list")
	for i := 0; i < c.Len(); i++ {
		commands = append(commands, fmt.Sprintf("set %d.Item.Cost %d", i, 5*(i+1)))
	}
	commands = append(commands, "sum")

	for _, cmd := range commands {
		fmt.Fprintf(out, "> %s\n", cmd)
		if err := shell.Execute(cmd); err != nil {
			return err
		}
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
	}
}
