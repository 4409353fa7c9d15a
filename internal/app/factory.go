package app

import (
	"strings"

	"github.com/footprint-tools/cobalt/internal/config"
	"github.com/footprint-tools/cobalt/internal/console"
	"github.com/footprint-tools/cobalt/internal/dispatchers"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/log"
	"github.com/footprint-tools/cobalt/internal/paths"
	"github.com/footprint-tools/cobalt/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// ConfigPath is the config.toml to load. Empty means paths.ConfigFilePath().
	ConfigPath string

	// LogLevel overrides the configured log_level when non-empty.
	LogLevel string

	// NoColor disables styling regardless of config.
	NoColor bool

	// IsTTY reports whether stdout is a terminal. Styling needs one.
	IsTTY bool
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{
		ConfigPath: paths.ConfigFilePath(),
	}
}

// Application is the wired console: its configuration, an empty command
// registry, and a console reading lines into it. Callers register their
// commands on Registry before running Console.
type Application struct {
	ConfigPath string
	Config     *config.Config
	Logger     domain.Logger
	Styler     domain.Styler
	Registry   *dispatchers.Registry
	Console    *console.Console
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*Application, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = paths.ConfigFilePath()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(opts.LogLevel)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if opts.NoColor {
		cfg.Color = false
	}

	var (
		logger         domain.Logger = log.NopLogger{}
		registryLogger domain.Logger = log.NopLogger{}
		consoleLogger  domain.Logger = log.NopLogger{}
	)
	if cfg.EnableLog {
		// A log file we cannot open is not fatal; run without logging.
		if err := log.Init(cfg.LogPath, log.ParseLevel(cfg.LogLevel)); err == nil {
			l := log.GetLogger()
			logger = l
			registryLogger = l.Named("registry")
			consoleLogger = l.Named("console")
		}
	}

	warnUnknownKeys(logger, cfg, opts.ConfigPath)

	style.Init(cfg.Color && opts.IsTTY, cfg.Theme)

	registry := dispatchers.New(dispatchers.WithLogger(registryLogger))
	styler := style.NewStyler()

	return &Application{
		ConfigPath: opts.ConfigPath,
		Config:     cfg,
		Logger:     logger,
		Styler:     styler,
		Registry:   registry,
		Console: console.New(registry,
			console.WithPrompt(cfg.Prompt),
			console.WithHistorySize(cfg.HistorySize),
			console.WithLogger(consoleLogger),
			console.WithStyler(styler),
		),
	}, nil
}

func warnUnknownKeys(logger domain.Logger, cfg *config.Config, path string) {
	for _, key := range cfg.Unknown {
		logger.Warn("config: unknown key %q in %s", key, path)
	}
}

// NewForTesting creates an Application suitable for testing.
// Uses default config, NopLogger, and no styling.
func NewForTesting() *Application {
	cfg := config.Default()
	registry := dispatchers.New()
	return &Application{
		ConfigPath: paths.ConfigFilePath(),
		Config:     cfg,
		Logger:     log.NopLogger{},
		Styler:     style.NopStyler{},
		Registry:   registry,
		Console:    console.New(registry, console.WithPrompt(cfg.Prompt), console.WithStyler(style.NopStyler{})),
	}
}

// Close cleans up application resources.
func Close(app *Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	return nil
}
