package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/JawandS/WbgNews/internal/api"
	"github.com/JawandS/WbgNews/internal/config"
	"github.com/JawandS/WbgNews/internal/httpclient"
	"github.com/JawandS/WbgNews/internal/logging"
	"github.com/JawandS/WbgNews/internal/metrics"
	"github.com/JawandS/WbgNews/internal/prefs"
	"github.com/JawandS/WbgNews/internal/render"
	"github.com/JawandS/WbgNews/internal/state"
	"github.com/JawandS/WbgNews/internal/ui"
)

const uiPollTick = time.Second

// Options configure the wbgnews application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/wbgnews/prefs.toml
	PollEvery  time.Duration // overrides refresh_interval_ms when positive

	// Once fetches a single time, prints the meetings and exits.
	Once    bool
	Format  string // text or html
	Variant render.Variant
	Output  io.Writer // defaults to stdout
}

// Run boots wbgnews until the UI exits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.RefreshInterval = opts.PollEvery
	}

	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()
	// Library packages log through slog's default; keep it off the terminal.
	slog.SetDefault(logger)

	m := metrics.New()
	client, err := newClient(cfg, m, logger)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	svc, err := api.NewService(client)
	if err != nil {
		return fmt.Errorf("init meetings service: %w", err)
	}

	if opts.Once {
		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		return RunOnce(ctx, svc, out, opts.Format, opts.Variant)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed", slog.Any("error", err))
	}

	store := &state.Store{}
	poller := NewPoller(store, svc, cfg.RefreshInterval, logger, m)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startHealthCheck(ctx, svc, store, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(gctx)
	})
	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(gctx, cfg.MetricsAddr, m.Handler(), logger)
		})
	}
	g.Go(func() error {
		// Leaving the UI stops everything else.
		defer cancel()
		return ui.Run(gctx, ui.Options{
			Context:      gctx,
			Fetcher:      svc,
			Store:        store,
			Refresh:      poller.Refresh,
			PollTick:     uiPollTick,
			ThemeName:    userPrefs.Theme,
			PrefsPath:    opts.PrefsPath,
			LogPath:      cfg.LogFile,
			ColorProfile: lipgloss.ColorProfile(),
		})
	})

	logger.Info("wbgnews started",
		slog.String("api", client.BaseURL()),
		slog.Duration("refresh_interval", cfg.RefreshInterval))
	return g.Wait()
}

// newClient builds the HTTP client from configuration.
func newClient(cfg config.Config, observer httpclient.Observer, logger *slog.Logger) (*httpclient.Client, error) {
	opts := []httpclient.Option{
		httpclient.WithMaxRetries(cfg.MaxRetries),
		httpclient.WithRetryDelay(cfg.RetryDelay),
		httpclient.WithTimeout(cfg.RequestTimeout),
		httpclient.WithRetryClientErrors(cfg.RetryClientErrors),
		httpclient.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		httpclient.WithLogger(logger),
		httpclient.WithObserver(observer),
	}
	if cfg.CircuitBreaker {
		opts = append(opts, httpclient.WithBreaker(httpclient.DefaultBreakerConfig()))
	}
	return httpclient.New(cfg.APIBaseURL, opts...)
}
