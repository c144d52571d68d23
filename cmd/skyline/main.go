package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/skyline/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyline: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "skyline: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags turns command-line arguments into app options. An explicit
// -days must be positive.
func parseFlags(args []string, output io.Writer) (app.Options, error) {
	fs := flag.NewFlagSet("skyline", flag.ContinueOnError)
	fs.SetOutput(output)
	configPath := fs.String("config", "", "override config path (optional, defaults to ~/.config/skyline/config.toml)")
	prefsPath := fs.String("prefs", "", "override prefs path (optional)")
	days := fs.Int("days", 0, "window size in days (optional, overrides window_days)")
	if err := fs.Parse(args); err != nil {
		return app.Options{}, err
	}

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath}
	daysSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "days" {
			daysSet = true
		}
	})
	if daysSet {
		if *days <= 0 {
			fs.Usage()
			return app.Options{}, fmt.Errorf("-days must be a positive number of days, got %d", *days)
		}
		opts.WindowDays = *days
	}
	return opts, nil
}
