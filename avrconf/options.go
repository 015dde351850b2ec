package avrconf

import (
	"log/slog"
	"slices"
)

type Option func(*ConfigFile)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *ConfigFile) { f.log = l }
}

// WithMaxParentDepth bounds the number of ancestors merged by Export.
func WithMaxParentDepth(n int) Option {
	return func(f *ConfigFile) { f.maxDepth = n }
}

// WithRegions replaces the memory regions that are flattened into parts.
func WithRegions(names ...string) Option {
	return func(f *ConfigFile) { f.regions = slices.Clone(names) }
}

const DefaultMaxParentDepth = 64
