package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/skyline/internal/apod"
	"github.com/five82/skyline/internal/config"
	"github.com/five82/skyline/internal/logging"
	"github.com/five82/skyline/internal/prefs"
	"github.com/five82/skyline/internal/state"
	"github.com/five82/skyline/internal/ui"
)

// Options configure the skyline application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/skyline/prefs.toml
	WindowDays int    // zero uses the configured window
}

// Run boots the skyline TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.WindowDays > 0 {
		cfg.WindowDays = opts.WindowDays
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	client, err := apod.NewClient(apod.Options{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Locale:     cfg.Locale,
		HTTPClient: newHTTPClient(cfg.Timeout),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("init apod client: %w", err)
	}

	logger.Info("skyline starting",
		slog.Int("window_days", cfg.WindowDays),
		slog.String("locale", cfg.Locale),
		slog.Bool("demo_key", cfg.APIKey == apod.DefaultAPIKey),
	)

	store := &state.Store{}
	refresher := NewRefresher(store, client, cfg.WindowDays, logger)
	userPrefs := prefs.Load(opts.PrefsPath)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Refresher: refresher,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		Compact:   userPrefs.Compact,
		PrefsPath: opts.PrefsPath,
	})
	logger.Info("skyline stopped", slog.Any("error", err))
	return err
}
