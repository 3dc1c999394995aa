package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/avairo/tplcheck/internal/catalog"
	"github.com/avairo/tplcheck/internal/cli"
	"github.com/avairo/tplcheck/internal/cli/formatter"
	"github.com/avairo/tplcheck/internal/pipeline"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		// Check failures already printed their diagnostics stage by stage.
		if !errors.Is(err, pipeline.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	var observer pipeline.Observer = pipeline.NoopObserver{}
	if enabled, _ := strconv.ParseBool(os.Getenv("TPLCHECK_LOG")); enabled {
		observer = pipeline.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Paths:    catalog.DefaultPaths(),
		Out:      os.Stdout,
		Observer: observer,
	}

	return cli.NewRootCmd(app).Execute()
}
