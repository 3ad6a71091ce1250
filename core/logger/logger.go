package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	level  slog.Leveler
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures the logger factory.
type Option func(*config)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSONFormatter switches output to JSON format.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithTextFormatter switches output to human-readable text format.
func WithTextFormatter() Option {
	return func(c *config) {
		c.json = false
	}
}

// WithOutput sets the output destination.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr attaches a static attribute to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level with the app name attached.
func WithDevelopment(app string) Option {
	return func(c *config) {
		c.json = false
		c.level = slog.LevelDebug
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// WithProduction configures JSON output at info level with the app name attached.
func WithProduction(app string) Option {
	return func(c *config) {
		c.json = true
		c.level = slog.LevelInfo
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// New creates a slog.Logger from the given options. Without options it logs
// text at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.json {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}
