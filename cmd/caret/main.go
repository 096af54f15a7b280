// Package main is the entry point for the caret demo editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/caret/internal/app"
	"github.com/dshills/caret/internal/keymap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, action := parseFlags()

	switch action.kind {
	case actionVersion:
		fmt.Printf("caret %s (%s)\n", version, commit)
		return 0
	case actionWriteKeymap:
		if err := keymap.WriteDefault(action.path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing keymap: %v\n", err)
			return 1
		}
		fmt.Printf("wrote default keymap to %s\n", action.path)
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		// A user-requested quit is a clean exit.
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

type actionKind int

const (
	actionRun actionKind = iota
	actionVersion
	actionWriteKeymap
)

type action struct {
	kind actionKind
	path string
}

func parseFlags() (app.Options, action) {
	var opts app.Options
	var showVersion bool
	var writeKeymap string

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&writeKeymap, "write-keymap", "", "Write the default keymap to the given path and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: caret [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "A multi-cursor editing demo.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		opts.FilePath = flag.Arg(0)
	}

	switch {
	case showVersion:
		return opts, action{kind: actionVersion}
	case writeKeymap != "":
		return opts, action{kind: actionWriteKeymap, path: writeKeymap}
	default:
		return opts, action{kind: actionRun}
	}
}
