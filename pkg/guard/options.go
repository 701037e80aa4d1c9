package guard

import (
	"maps"
	"strings"
)

// Option configures the context attached to a failure.
type Option func(*config)

type config struct {
	name        string
	message     string
	annotations map[string]any
}

// WithName sets the argument name. Blank names are ignored.
func WithName(name string) Option {
	return func(c *config) { c.name = normalize(name) }
}

// WithMessage overrides the failure message. Blank messages are ignored.
func WithMessage(message string) Option {
	return func(c *config) { c.message = normalize(message) }
}

// WithAnnotations copies the entries of m onto the failure.
// Nil and empty maps add nothing. Later entries overwrite earlier ones.
func WithAnnotations(m map[string]any) Option {
	return func(c *config) {
		if len(m) == 0 {
			return
		}
		if c.annotations == nil {
			c.annotations = make(map[string]any, len(m))
		}
		maps.Copy(c.annotations, m)
	}
}

// WithAnnotation adds a single key/value pair to the failure.
func WithAnnotation(key string, value any) Option {
	return func(c *config) {
		if c.annotations == nil {
			c.annotations = make(map[string]any, 1)
		}
		c.annotations[key] = value
	}
}

func collect(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

func normalize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}
