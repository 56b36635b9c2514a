// Package config defines core configuration types for mdpress.
// These types are pure data structures; loading and precedence merging live
// in internal/configloader.
package config

import "github.com/yaklabco/mdpress/pkg/mdhtml"

// Config is the root configuration structure for mdpress.
type Config struct {
	// OutDir is the directory HTML files are written to.
	// Empty means "alongside the input file".
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`

	// Title is the page title used for full-document output when the
	// document has no top-level heading.
	Title string `mapstructure:"title" yaml:"title"`

	// TabWidth is the tab stop width used when measuring indentation.
	TabWidth int `mapstructure:"tab_width" yaml:"tab_width"`

	// CodeColor is the W3.CSS color class applied to code block panels.
	CodeColor string `mapstructure:"code_color" yaml:"code_color"`

	// HeadingColor is an optional W3.CSS color class applied to headings.
	HeadingColor string `mapstructure:"heading_color" yaml:"heading_color"`

	// Fragment emits body-only HTML without the document head/foot wrapper.
	Fragment bool `mapstructure:"fragment" yaml:"fragment"`

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) treated as Markdown during discovery.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Stdout writes converted HTML to standard output instead of files.
	Stdout bool `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers. 0 means auto.
	Jobs int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		OutDir:       "",
		Title:        mdhtml.DefaultTitle,
		TabWidth:     mdhtml.DefaultTabWidth,
		CodeColor:    mdhtml.DefaultCodeColor,
		HeadingColor: "",
		Fragment:     false,
		Extensions:   nil,
		Ignore:       nil,
		Jobs:         0,
	}
}

// ConverterOptions maps the configuration onto engine options.
func (c *Config) ConverterOptions() mdhtml.Options {
	if c == nil {
		return mdhtml.Options{}
	}
	return mdhtml.Options{
		TabWidth:     c.TabWidth,
		CodeColor:    c.CodeColor,
		HeadingColor: c.HeadingColor,
	}
}
