// Package config holds the colx configuration file schema and its embedded
// defaults.
package config

// Config is the top-level configuration file.
type Config struct {
	Layout Layout `yaml:"layout"`
}

// Layout configures the width budget and how lines are measured.
// Pointer fields distinguish "unset" from a zero value when merging.
type Layout struct {
	Width     *int    `yaml:"width,omitempty"`
	Padding   *int    `yaml:"padding,omitempty"`
	AutoWidth *bool   `yaml:"auto_width,omitempty"`
	Measure   *string `yaml:"measure,omitempty"`
}

// Merge returns base with every field set in override replacing base's.
func Merge(base, override Config) Config {
	out := base
	if override.Layout.Width != nil {
		out.Layout.Width = override.Layout.Width
	}
	if override.Layout.Padding != nil {
		out.Layout.Padding = override.Layout.Padding
	}
	if override.Layout.AutoWidth != nil {
		out.Layout.AutoWidth = override.Layout.AutoWidth
	}
	if override.Layout.Measure != nil {
		out.Layout.Measure = override.Layout.Measure
	}
	return out
}

// Fallbacks used when neither the embedded defaults nor any override set a
// value.
const (
	DefaultWidth       = 120
	DefaultPadding     = 2
	DefaultMeasureMode = "runes"
)

// Width returns the configured row width.
func (c Config) Width() int {
	if c.Layout.Width == nil {
		return DefaultWidth
	}
	return *c.Layout.Width
}

// Padding returns the configured column padding.
func (c Config) Padding() int {
	if c.Layout.Padding == nil {
		return DefaultPadding
	}
	return *c.Layout.Padding
}

// AutoWidth reports whether the terminal width should replace Width.
func (c Config) AutoWidth() bool {
	return c.Layout.AutoWidth != nil && *c.Layout.AutoWidth
}

// MeasureMode returns the configured measure mode name.
func (c Config) MeasureMode() string {
	if c.Layout.Measure == nil || *c.Layout.Measure == "" {
		return DefaultMeasureMode
	}
	return *c.Layout.Measure
}
