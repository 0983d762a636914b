package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	defsPath := flag.String("defs", "", "Path to entity definitions YAML")
	output := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "", "Package name (defaults to the definitions' package)")
	flag.Parse()

	if *defsPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: graphwatch-gen -defs <path> -output <file> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*defsPath, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(defsPath, output, pkg string) error {
	defs, err := LoadDefs(defsPath)
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	code, err := Generate(defs, pkg)
	if err != nil {
		return fmt.Errorf("generating entities: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(output), err)
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
