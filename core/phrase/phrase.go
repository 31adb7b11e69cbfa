package phrase

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/phrase/core/locale"
	"github.com/dmitrymomot/phrase/core/logger"
	"github.com/dmitrymomot/phrase/core/plural"
)

const (
	// DefaultValueKey is the fallback category key of value templates.
	DefaultValueKey = "default"

	// DefaultMaxSubstitutions bounds placeholder substitutions per render.
	DefaultMaxSubstitutions = 1000
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_-]+)\}`)

// Resolver renders sentences into text. It is immutable after creation,
// making it safe for concurrent use.
type Resolver struct {
	bundle           Bundle
	defaultValueKey  string
	emptyValue       string
	locale           string
	icu              bool
	categoryOf       plural.Func
	choose           Chooser
	maxSubstitutions int
	logger           *slog.Logger
}

// New creates a Resolver with the given options. Defaults: default value key
// "default", empty value "", locale "en-US", numeric categories, random
// choice, DefaultMaxSubstitutions and a discarding logger.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		defaultValueKey:  DefaultValueKey,
		locale:           locale.Default,
		choose:           RandomChooser,
		maxSubstitutions: DefaultMaxSubstitutions,
		logger:           logger.Discard(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	r.logger = r.logger.With(logger.Component("phrase"))

	if r.categoryOf == nil {
		r.categoryOf = plural.Numeric
		if r.icu {
			tag, err := locale.Parse(r.locale)
			if err != nil {
				return nil, fmt.Errorf("failed to load plural rules: %w", err)
			}
			r.categoryOf = plural.ForTag(tag)
			r.logger.Debug("phrase: plural rules loaded", logger.Locale(r.locale))
		}
	}

	return r, nil
}

// Render selects a variation of s and resolves its placeholders using params.
// A sentence without variations renders as the empty value.
func (r *Resolver) Render(s Sentence, params Params) (string, error) {
	return r.render(s, params)
}

// RenderKey renders the bundle sentence registered under key.
func (r *Resolver) RenderKey(key string, params Params) (string, error) {
	if r.bundle == nil {
		return "", ErrNoBundle
	}
	s, ok := r.bundle[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrSentenceNotFound, key)
	}
	text, err := r.render(s, params)
	if err != nil {
		return "", fmt.Errorf("rendering %q: %w", key, err)
	}
	return text, nil
}

// Text is like Render but never fails: errors are logged and the empty value
// is returned.
func (r *Resolver) Text(s Sentence, params Params) string {
	text, err := r.Render(s, params)
	if err != nil {
		r.logger.Warn("phrase: render failed", logger.Error(err))
		return r.emptyValue
	}
	return text
}

// T is like RenderKey but never fails: errors are logged and the empty value
// is returned.
func (r *Resolver) T(key string, params Params) string {
	text, err := r.RenderKey(key, params)
	if err != nil {
		r.logger.Warn("phrase: render failed", logger.SentenceKey(key), logger.Error(err))
		return r.emptyValue
	}
	return text
}

// HasLocaleSupport reports whether the resolver's locale renders the month
// of locale.ProbeInstant (January) as expected. It never affects rendering.
func (r *Resolver) HasLocaleSupport(expectedMonth string) bool {
	ok := locale.HasSupport(r.locale, expectedMonth)
	r.logger.Debug("phrase: locale support checked",
		logger.Locale(r.locale),
		slog.String("expected_month", expectedMonth),
		slog.Bool("supported", ok),
	)
	return ok
}

// DefaultValueKey returns the fallback category key.
func (r *Resolver) DefaultValueKey() string { return r.defaultValueKey }

// EmptyValue returns the text substituted for missing values.
func (r *Resolver) EmptyValue() string { return r.emptyValue }

// Locale returns the configured locale.
func (r *Resolver) Locale() string { return r.locale }

// ICU reports whether CLDR plural categories are enabled.
func (r *Resolver) ICU() bool { return r.icu }

// Bundle returns the configured bundle, nil when none.
func (r *Resolver) Bundle() Bundle { return r.bundle }

func (r *Resolver) render(s Sentence, params Params) (string, error) {
	text, ok := r.pick(s.Variations)
	if !ok {
		return r.emptyValue, nil
	}

	values := newValueCache(params)
	for n := 0; ; n++ {
		loc := placeholderPattern.FindStringSubmatchIndex(text)
		if loc == nil {
			return text, nil
		}
		if n == r.maxSubstitutions {
			r.logger.Debug("phrase: substitution limit reached",
				logger.Placeholder(text[loc[2]:loc[3]]),
				logger.Count("substitutions", n),
			)
			return "", fmt.Errorf("%w: %d", ErrSubstitutionLimit, r.maxSubstitutions)
		}

		name := text[loc[2]:loc[3]]
		replacement := r.substitute(s, name, values.get(name))
		text = text[:loc[0]] + replacement + text[loc[1]:]
	}
}

// substitute computes the text that replaces one {name} placeholder.
func (r *Resolver) substitute(s Sentence, name string, v Value) string {
	tmpl, ok := s.valueTemplate(name)
	if !ok {
		return r.text(v)
	}

	category := r.category(v)
	items, _ := tmpl.Lookup(category, r.defaultValueKey)
	phrase, ok := r.pick(items)
	if !ok {
		r.logger.Debug("phrase: no phrase for category",
			logger.Placeholder(name),
			logger.Category(category),
		)
		return r.emptyValue
	}

	// A phrase may embed its own placeholder to carry the raw value.
	return strings.Replace(phrase, "{"+name+"}", r.text(v), 1)
}

// category computes the value-template key for v.
func (r *Resolver) category(v Value) string {
	if v.IsMissing() {
		return r.defaultValueKey
	}
	if n, ok := v.Float(); ok {
		return r.categoryOf(n)
	}
	return v.String()
}

// text returns the string form of v, or the empty value when v is missing or
// renders as "".
func (r *Resolver) text(v Value) string {
	if v.IsMissing() {
		return r.emptyValue
	}
	if s := v.String(); s != "" {
		return s
	}
	return r.emptyValue
}

// valueCache evaluates lazy params at most once per render.
type valueCache struct {
	params Params
	lazy   map[string]Value
}

func newValueCache(params Params) *valueCache {
	return &valueCache{params: params}
}

func (c *valueCache) get(name string) Value {
	v, ok := c.params[name]
	if !ok || v.Kind() != KindLazy {
		return v
	}
	if resolved, ok := c.lazy[name]; ok {
		return resolved
	}
	if c.lazy == nil {
		c.lazy = make(map[string]Value)
	}
	resolved := v.resolve()
	c.lazy[name] = resolved
	return resolved
}
