package sdftext

import (
	"github.com/gogpu/sdftext/atlas"
	"github.com/gogpu/sdftext/layout"
)

// Option configures Text creation.
//
// Example:
//
//	t, err := sdftext.New(f,
//	    sdftext.WithCharset("0123456789"),
//	    sdftext.WithFormat(atlas.DefaultFormat().WithTextureSize(512, 512)),
//	)
type Option func(*config)

// config holds configuration for Text.
type config struct {
	format  atlas.Format
	charset string
	atlases *atlas.Cache
	metrics *layout.MetricsCache
}

// defaultConfig returns the default text configuration.
func defaultConfig() config {
	return config{
		format:  atlas.DefaultFormat(),
		charset: DefaultCharset(),
		atlases: atlas.DefaultCache(),
		metrics: defaultMetrics,
	}
}

// WithFormat sets the atlas format.
func WithFormat(f atlas.Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithCharset sets the characters rendered into the atlas. Characters
// outside the set are not drawn. A space is always included.
func WithCharset(chars string) Option {
	return func(c *config) {
		c.charset = chars
	}
}

// WithCache shares atlases through c instead of the process-wide cache.
func WithCache(c *atlas.Cache) Option {
	return func(cfg *config) {
		cfg.atlases = c
	}
}

// WithMetricsCache shares glyph metrics through c instead of the
// process-wide cache.
func WithMetricsCache(c *layout.MetricsCache) Option {
	return func(cfg *config) {
		cfg.metrics = c
	}
}
