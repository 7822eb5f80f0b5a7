package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alexanderramin/ember/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	// A closed stdout pipe should surface as an EPIPE write error the CLI
	// can swallow, not a SIGPIPE kill.
	signal.Ignore(syscall.SIGPIPE)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine the log directory: env var or default ~/.ember/log
	logDir := os.Getenv("EMBER_LOG_DIR")
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		logDir = filepath.Join(home, ".ember", "log")
	}

	app := &cli.App{
		Now:           time.Now,
		Stdout:        os.Stdout,
		DefaultLogDir: logDir,
	}
	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
