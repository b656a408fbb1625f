package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/feedup/internal/app"
	"github.com/sokinpui/feedup/internal/cli"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		if detailed, ok := err.(*app.DetailedError); ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n%s", detailed, detailed.Stack)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
