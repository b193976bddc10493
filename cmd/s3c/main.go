// s3c is a dual-panel terminal file manager for browsing AWS S3 buckets
// next to the local filesystem, copying files between the two.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/eddi888/s3c/internal/app"
	"github.com/eddi888/s3c/internal/config"
	"github.com/eddi888/s3c/internal/creds"
	"github.com/eddi888/s3c/internal/logging"
)

var (
	cli        = kingpin.New("s3c", "A dual-panel terminal file manager for S3.")
	debug      = cli.Flag("debug", "Run in debug mode.").Bool()
	trace      = cli.Flag("trace", "Run in trace mode.").Bool()
	configPath = cli.Flag("config", "Path to the profile/bucket registry (default: OS config dir).").String()
	maxBuckets = cli.Flag("max-cached-clients", "Maximum number of resolved S3 clients to cache per session.").Default("16").Int()
)

func main() {
	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "s3c: stdin/stdout must be a terminal")
		os.Exit(1)
	}

	logger, ring := logging.New(logging.Options{Debug: *debug, Trace: *trace})

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "s3c: resolving default config path: %v\n", err)
			os.Exit(1)
		}
		path = p
	}
	store := config.NewStore(path)

	cfg, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "s3c: loading config: %v\n", err)
		os.Exit(1)
	}

	resolver, err := creds.NewResolver(*maxBuckets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "s3c: initializing credential resolver: %v\n", err)
		os.Exit(1)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "/"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := app.New(ctx, homeDir, store, cfg, resolver, logger, ring)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "s3c: %v\n", err)
		os.Exit(1)
	}
}
