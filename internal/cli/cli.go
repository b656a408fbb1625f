package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// DefaultTargetFile is the file a bare invocation edits.
const DefaultTargetFile = "src/services/news.service.ts"

// Config holds all the command-line flag values.
type Config struct {
	File      string
	FeedsFile string
	Input     bool
	DryRun    bool
	PrintOnly bool
	Undo      bool
	Redo      bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.File, "file", "f", envOr("FEEDUP_FILE", DefaultTargetFile), "Target file to edit.")
	pflag.StringVarP(&cfg.FeedsFile, "feeds", "F", "", "Render the replacement block from an HCL feed registry file.")
	pflag.BoolVarP(&cfg.Input, "input", "i", false, "Read the replacement block from stdin (pipe) or the clipboard.")
	pflag.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print the resulting text to stdout without writing the file.")
	pflag.BoolVarP(&cfg.PrintOnly, "print-only", "p", false, "Locate and print the old section, then exit without writing.")

	// Mutually exclusive history group
	pflag.BoolVarP(&cfg.Undo, "undo", "u", false, "Undo the last operation.")
	pflag.BoolVarP(&cfg.Redo, "redo", "r", false, "Redo the last undone operation.")

	pflag.Usage = func() {
		fmt.Println("Usage: feedup [flags]")
		fmt.Println("\nReplace the feed-list section of the news service with a new block.")
		fmt.Println("\nExample: feedup -F feeds.hcl -n")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Validate mutually exclusive flags
	if cfg.Undo && cfg.Redo {
		return nil, fmt.Errorf("error: --undo and --redo are mutually exclusive")
	}
	if cfg.Input && cfg.FeedsFile != "" {
		return nil, fmt.Errorf("error: --input and --feeds are mutually exclusive")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
