package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
)

// Format selects the rendered output form.
type Format string

const (
	// FormatText renders an aligned, human-readable listing.
	FormatText Format = "text"
	// FormatYAML renders a machine-readable YAML document.
	FormatYAML Format = "yaml"
)

// Option configures a renderer.
type Option func(*options)

// options is the renderer's resolved configuration: an immutable struct built
// once from defaults merged with the caller's options, never mutated after.
type options struct {
	format        Format
	lang          language.Tag
	includeValues bool
}

func defaultOptions() options {
	return options{
		format:        FormatText,
		lang:          language.Und,
		includeValues: true,
	}
}

// WithFormat sets the output format. Unknown formats panic: a renderer that
// cannot produce its output should fail before any report is built.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatText, FormatYAML:
			o.format = f
		default:
			panic(fmt.Errorf("unknown report format %q", f))
		}
	}
}

// WithLanguage localizes number rendering of values in the report body.
// language.Und (the default) keeps the invariant form used in message texts.
// Message texts themselves are never localized.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

// WithoutValues omits the value listing, rendering messages only.
func WithoutValues() Option {
	return func(o *options) { o.includeValues = false }
}

// Renderer renders reports with a fixed configuration.
type Renderer struct {
	opts options
}

// NewRenderer builds a renderer from defaults merged with opts.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render writes the report to w in the configured format.
func (r *Renderer) Render(w io.Writer, rep Report) error {
	switch r.opts.format {
	case FormatYAML:
		return r.renderYAML(w, rep)
	default:
		return r.renderText(w, rep)
	}
}
