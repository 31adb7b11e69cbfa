package phrase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/phrase/core/plural"
)

// Option configures the Resolver during construction.
type Option func(*Resolver) error

// WithBundle sets the sentence bundle used by RenderKey and T.
func WithBundle(bundle Bundle) Option {
	return func(r *Resolver) error {
		r.bundle = bundle
		return nil
	}
}

// WithDefaultValueKey sets the fallback category key of value templates.
func WithDefaultValueKey(key string) Option {
	return func(r *Resolver) error {
		if key == "" {
			return fmt.Errorf("default value key cannot be empty")
		}
		r.defaultValueKey = key
		return nil
	}
}

// WithEmptyValue sets the text substituted for missing values.
func WithEmptyValue(value string) Option {
	return func(r *Resolver) error {
		r.emptyValue = value
		return nil
	}
}

// WithLocale sets the locale used for plural rules and the locale probe.
func WithLocale(locale string) Option {
	return func(r *Resolver) error {
		if strings.TrimSpace(locale) == "" {
			return fmt.Errorf("locale cannot be empty")
		}
		r.locale = locale
		return nil
	}
}

// WithICU enables CLDR plural categories for numeric values. When disabled,
// a number selects the template key equal to its decimal form.
func WithICU(enabled bool) Option {
	return func(r *Resolver) error {
		r.icu = enabled
		return nil
	}
}

// WithCategoryFunc sets a custom number-to-category strategy. It takes
// precedence over WithICU.
func WithCategoryFunc(fn plural.Func) Option {
	return func(r *Resolver) error {
		if fn == nil {
			return fmt.Errorf("category func cannot be nil")
		}
		r.categoryOf = fn
		return nil
	}
}

// WithChooser sets the random choice function used to pick variations and
// phrases.
func WithChooser(choose Chooser) Option {
	return func(r *Resolver) error {
		if choose == nil {
			return fmt.Errorf("chooser cannot be nil")
		}
		r.choose = choose
		return nil
	}
}

// WithMaxSubstitutions bounds the number of placeholder substitutions in a
// single render.
func WithMaxSubstitutions(n int) Option {
	return func(r *Resolver) error {
		if n < 1 {
			return fmt.Errorf("max substitutions must be positive, got %d", n)
		}
		r.maxSubstitutions = n
		return nil
	}
}

// WithLogger sets the logger. Resolvers are silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		r.logger = log
		return nil
	}
}

// WithConfig applies every field of cfg. Empty string fields and a
// non-positive MaxSubstitutions keep the current setting.
func WithConfig(cfg Config) Option {
	return func(r *Resolver) error {
		if cfg.DefaultValueKey != "" {
			r.defaultValueKey = cfg.DefaultValueKey
		}
		if cfg.Locale != "" {
			r.locale = cfg.Locale
		}
		if cfg.MaxSubstitutions > 0 {
			r.maxSubstitutions = cfg.MaxSubstitutions
		}
		r.emptyValue = cfg.EmptyValue
		r.icu = cfg.ICU
		return nil
	}
}
