// Command graphwatch-log is a tool for viewing and analyzing collection
// event logs.
//
// Log files are created by graphwatch-demo with the -event-log flag, or by any
// collection configured with a log.FileLogger.
//
// Usage:
//
//	graphwatch-log <command> [flags] <file.glog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	graphwatch-log view demo.glog
//
//	# View only relayed changes
//	graphwatch-log view -category relay demo.glog
//
//	# Export to JSONL
//	graphwatch-log export -format jsonl demo.glog
//
//	# Keep only Cost changes and save to new file
//	graphwatch-log filter -field Cost -o cost.glog demo.glog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/graphwatch/graphwatch-go/cmd/graphwatch-log/commands"
)

const usage = `graphwatch-log - Collection Event Log Analyzer

Usage:
  graphwatch-log <command> [flags] <file.glog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "graphwatch-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `graphwatch-log view - View log file in human-readable format

Usage:
  graphwatch-log view [flags] <file.glog>

Flags:
`)
		fs.PrintDefaults()
	}

	category := fs.String("category", "", "Filter by category (subscription, relay, collection, error)")
	session := fs.String("session", "", "Filter by session ID")
	entity := fs.String("entity", "", "Filter by entity ID")
	field := fs.String("field", "", "Filter by field name")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter := commands.ViewFilter{
		SessionID: *session,
		EntityID:  *entity,
		Field:     *field,
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `graphwatch-log export - Export log file to JSON or CSV format

Usage:
  graphwatch-log export [flags] <file.glog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `graphwatch-log filter - Filter log file and write to new file

Usage:
  graphwatch-log filter [flags] -o <output.glog> <file.glog>

Flags:
`)
		fs.PrintDefaults()
	}

	var opts commands.FilterOptions
	fs.StringVar(&opts.Output, "o", "", "Output file (required)")
	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.EntityID, "entity", "", "Filter by entity ID")
	fs.StringVar(&opts.Field, "field", "", "Filter by field name")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (subscription, relay, collection, error)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Include events at or after this time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Include events before this time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if opts.Output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file required (-o)")
		fs.Usage()
		os.Exit(1)
	}

	count, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %d events to %s\n", count, opts.Output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `graphwatch-log stats - Show statistics about the log file

Usage:
  graphwatch-log stats <file.glog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
