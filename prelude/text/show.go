package text

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lguimbarda/min-prelude/prelude/core"
)

// ShowConfig holds options for Show.
type ShowConfig struct {
	Prefix     string
	Indent     string
	EscapeHTML bool
}

// ShowOption is a functional option for configuring Show.
type ShowOption func(*ShowConfig)

// WithIndent lays out the output over several lines, one element per line,
// like json.MarshalIndent.
func WithIndent(prefix, indent string) ShowOption {
	return func(c *ShowConfig) {
		c.Prefix = prefix
		c.Indent = indent
	}
}

// WithEscapeHTML controls whether <, > and & are escaped in strings.
func WithEscapeHTML(escape bool) ShowOption {
	return func(c *ShowConfig) {
		c.EscapeHTML = escape
	}
}

func defaultConfig() ShowConfig {
	return ShowConfig{}
}

func applyOptions(opts ...ShowOption) ShowConfig {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Show converts x to JSON text. Values with no JSON form (functions,
// channels, complex numbers, NaN and infinities) give an error wrapping
// core.ErrCannotShow.
func Show(x any, opts ...ShowOption) (string, error) {
	cfg := applyOptions(opts...)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(cfg.EscapeHTML)
	if cfg.Prefix != "" || cfg.Indent != "" {
		enc.SetIndent(cfg.Prefix, cfg.Indent)
	}
	if err := enc.Encode(x); err != nil {
		return "", fmt.Errorf("%w %T: %w", core.ErrCannotShow, x, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// MustShow is Show that aborts with a core.UserError on failure.
func MustShow(x any, opts ...ShowOption) string {
	s, err := Show(x, opts...)
	if err != nil {
		return core.Error[string](err.Error())
	}
	return s
}

// Read parses JSON text into a value of type T.
func Read[T any](s string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, fmt.Errorf("read %T: %w", v, err)
	}
	return v, nil
}
