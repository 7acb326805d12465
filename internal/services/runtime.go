package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/karthickk/tmplutil/pkg/bundle"
	"github.com/karthickk/tmplutil/pkg/config"
	"github.com/karthickk/tmplutil/pkg/container"
	"github.com/karthickk/tmplutil/pkg/extension"
	"github.com/karthickk/tmplutil/pkg/format"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type runtimeKey struct{}

// Options controls how the runtime is set up
type Options struct {
	ConfigFile string
	Debug      bool
	LogWriter  io.Writer
	Now        func() time.Time
}

// Runtime bundles everything a command needs
type Runtime struct {
	Config    *config.Config
	Logger    *pterm.Logger
	Extension *extension.Extension
	Location  *time.Location

	settings  map[string]any
	once      sync.Once
	container *container.Container
	err       error
}

// Setup loads the configuration and builds the logger and extension
func Setup(opts Options) (*Runtime, error) {
	config.SetConfigFile(opts.ConfigFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.LogLevel, opts.Debug, opts.LogWriter)
	if file := config.FileUsed(); file != "" {
		logger.Debug("using config file", logger.Args("path", file))
	}

	ext := extension.New(
		extension.WithDefaults(Defaults(cfg)),
		extension.WithLocation(loc),
		extension.WithClock(opts.Now),
	)

	return &Runtime{
		Config:    cfg,
		Logger:    logger,
		Extension: ext,
		Location:  loc,
		settings:  config.Settings(),
	}, nil
}

// Container loads the configuration into a parameter container. The
// container is built once per runtime.
func (r *Runtime) Container() (*container.Container, error) {
	r.once.Do(func() {
		c := container.New()
		b := bundle.New(bundle.WithLogger(r.Logger))
		if err := b.Load(r.settings, c); err != nil {
			r.err = fmt.Errorf("failed to build container: %w", err)
			return
		}
		r.container = c
	})
	return r.container, r.err
}

// Defaults maps the filter configuration onto extension defaults
func Defaults(cfg *config.Config) extension.Defaults {
	f := cfg.Filters
	return extension.Defaults{
		PhoneFormat: f.Phone.Format,
		Price: format.PriceFormat{
			Decimals:           f.Price.Decimals,
			DecimalSeparator:   f.Price.DecimalSeparator,
			ThousandsSeparator: f.Price.ThousandsSeparator,
		},
		TrueLabel:   f.Boolean.TrueLabel,
		FalseLabel:  f.Boolean.FalseLabel,
		Granularity: f.TimeAgo.Granularity,
		Suffix:      f.TimeAgo.Suffix,
	}
}

// NewLogger creates a logger for the given level name
func NewLogger(level string, debug bool, w io.Writer) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}

	logLevel := ParseLogLevel(level)
	if debug && (logLevel == pterm.LogLevelDisabled || logLevel > pterm.LogLevelDebug) {
		logLevel = pterm.LogLevelDebug
	}

	return pterm.DefaultLogger.WithLevel(logLevel).WithWriter(w)
}

// ParseLogLevel converts a level name, defaulting to info
func ParseLogLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "disabled":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

// WithRuntime stores a runtime in ctx
func WithRuntime(ctx context.Context, r *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, r)
}

// FromCommand returns the runtime set up by the root command, or sets up a
// default one when the command runs on its own.
func FromCommand(cmd *cobra.Command) (*Runtime, error) {
	if ctx := cmd.Context(); ctx != nil {
		if r, ok := ctx.Value(runtimeKey{}).(*Runtime); ok {
			return r, nil
		}
	}
	return Setup(Options{LogWriter: cmd.ErrOrStderr()})
}
