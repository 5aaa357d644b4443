package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/aretw0/surveyshell/assets"
	"github.com/aretw0/surveyshell/internal/config"
	"github.com/aretw0/surveyshell/internal/logging"
	"github.com/aretw0/surveyshell/internal/metrics"
	"github.com/aretw0/surveyshell/pkg/adapters/file"
	httpAdapter "github.com/aretw0/surveyshell/pkg/adapters/http"
	"github.com/aretw0/surveyshell/pkg/adapters/mcp"
	"github.com/aretw0/surveyshell/pkg/adapters/redis"
	"github.com/aretw0/surveyshell/pkg/navigation"
	"github.com/aretw0/surveyshell/pkg/ports"
)

// App bundles the shell's wired components.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Gate    *navigation.Gate
	Static  fs.FS
	Sources ports.SourceLoader

	files   *file.Source
	closers []func() error
}

// LoadConfig reads the configuration at path and applies a non-empty level override.
func LoadConfig(path, level string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// NewLogger builds the application logger for cfg.
func NewLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// NewApp wires sources, metrics and the guard from cfg.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	// 1. Static root: a directory when configured, the embedded assets otherwise.
	var static fs.FS
	if cfg.StaticDir != "" {
		info, err := os.Stat(cfg.StaticDir)
		if err != nil {
			return nil, fmt.Errorf("error opening static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %s is not a directory", cfg.StaticDir)
		}
		static = os.DirFS(cfg.StaticDir)
	} else {
		static = assets.Static()
	}

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		Static:  static,
		files:   file.New(static),
	}
	app.Sources = app.files

	// 2. Optional source cache
	if cfg.Redis.Addr != "" {
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, app.files,
			redis.WithTTL(cfg.Redis.TTL),
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithLogger(logger),
		)
		app.Sources = cache
		app.closers = append(app.closers, cache.Close)
		logger.Info("Source cache enabled", "redis", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	// 3. Guard
	app.Gate = navigation.NewGate(
		navigation.NewState(cfg.Navigation.Initialized),
		navigation.WithObserver(app.Metrics.ObserveGuard),
		navigation.WithObserver(logGuard(logger)),
	)

	return app, nil
}

func logGuard(logger *slog.Logger) navigation.Observer {
	return func(target navigation.Target, action navigation.Action) {
		if action.IsRedirect() {
			logger.Debug("Navigation redirected", "path", target.Path, "to", action.Path)
		}
	}
}

// Handler returns the HTTP host for the app.
func (a *App) Handler() http.Handler {
	return httpAdapter.NewHandler(a.Sources, a.Gate,
		httpAdapter.WithStatic(a.Static),
		httpAdapter.WithLogger(a.Logger),
		httpAdapter.WithRecorder(a.Metrics),
		httpAdapter.WithMetricsHandler(a.Metrics.Handler()),
		httpAdapter.WithMaxInputSize(a.Config.MaxInputSize),
	)
}

// MCPServer returns the MCP tool server for the app.
func (a *App) MCPServer() *mcp.Server {
	return mcp.NewServer(a.Gate,
		mcp.WithSources(a.files),
		mcp.WithLogger(a.Logger),
		mcp.WithMaxInputSize(a.Config.MaxInputSize),
	)
}

// Close releases external connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
