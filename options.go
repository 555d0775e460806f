package kalla

import (
	"log/slog"

	"github.com/0xalexb/kalla/format"
)

// Options holds configuration settings for the Fx module.
type Options struct {
	Config  Config
	Loaders []format.Loader
	Logger  *slog.Logger
}

// Option defines a function type for applying module options.
type Option func(*Options)

// WithConfigNames adds base configuration names probed during directory
// scans. Names must not contain wildcards; violations fail when the module
// constructs the standard resolver.
func WithConfigNames(names ...string) Option {
	return func(opts *Options) {
		opts.Config.Names = append(opts.Config.Names, names...)
	}
}

// WithLoaders replaces the default format loaders. Registration order is
// meaningful: directory scans give later loaders higher precedence.
func WithLoaders(loaders ...format.Loader) Option {
	return func(opts *Options) {
		opts.Loaders = append(opts.Loaders, loaders...)
	}
}

// WithLogger sets the logger used for skip diagnostics. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
