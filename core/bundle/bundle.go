package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/phrase/core/logger"
	"github.com/dmitrymomot/phrase/core/phrase"
	"github.com/dmitrymomot/phrase/core/validator"
)

// Built-in format names.
const (
	FormatJSON  = "json"
	FormatJSONC = "jsonc"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

var (
	ErrUnsupportedFormat = errors.New("bundle: unsupported format")
	ErrInvalidSentence   = errors.New("bundle: invalid sentence")
)

// UnmarshalFunc decodes data into v. encoding/json, yaml.v3 and go-toml
// Unmarshal functions all satisfy it.
type UnmarshalFunc func(data []byte, v any) error

// Decoder turns encoded sentence documents into validated phrase values.
// It is immutable after New and safe for concurrent use.
type Decoder struct {
	unmarshal map[string]UnmarshalFunc
	logger    *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder) error

// WithUnmarshalFunc registers fn for format, replacing any built-in decoder
// with the same name. Format names are case-insensitive.
func WithUnmarshalFunc(format string, fn UnmarshalFunc) Option {
	return func(d *Decoder) error {
		format = normalizeFormat(format)
		if format == "" {
			return errors.New("format cannot be empty")
		}
		if fn == nil {
			return fmt.Errorf("unmarshal func for %q cannot be nil", format)
		}
		d.unmarshal[format] = fn
		return nil
	}
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		d.logger = l
		return nil
	}
}

// New creates a Decoder that understands json, jsonc, yaml (yml) and toml
// plus any format registered through options.
func New(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		unmarshal: builtin(),
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	d.logger = d.logger.With(logger.Component("bundle"))
	return d, nil
}

func builtin() map[string]UnmarshalFunc {
	return map[string]UnmarshalFunc{
		FormatJSON:  json.Unmarshal,
		FormatJSONC: unmarshalJSONC,
		FormatYAML:  yaml.Unmarshal,
		FormatTOML:  toml.Unmarshal,
	}
}

func unmarshalJSONC(data []byte, v any) error {
	return json.Unmarshal(jsonc.ToJSON(data), v)
}

// Formats lists the registered format names in sorted order.
func (d *Decoder) Formats() []string {
	out := make([]string, 0, len(d.unmarshal))
	for name := range d.unmarshal {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Decode parses a bundle document: a top-level object mapping sentence keys
// to sentences. Every entry is validated; the first invalid key in sorted
// order is reported.
func (d *Decoder) Decode(data []byte, format string) (phrase.Bundle, error) {
	doc, err := d.document(data, format)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	b := make(phrase.Bundle, len(doc))
	for _, key := range keys {
		entry := doc[key]
		if err := validator.ValidateSentence(entry); err != nil {
			d.logger.Debug("bundle entry rejected",
				logger.SentenceKey(key),
				logger.Format(format),
				violations(err),
			)
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidSentence, key, err)
		}
		b[key] = toSentence(entry.(map[string]any))
	}

	d.logger.Debug("bundle decoded", logger.Format(format), logger.Count("sentences", len(b)))
	return b, nil
}

// DecodeSentence parses a document holding a single sentence.
func (d *Decoder) DecodeSentence(data []byte, format string) (phrase.Sentence, error) {
	doc, err := d.document(data, format)
	if err != nil {
		return phrase.Sentence{}, err
	}
	if err := validator.ValidateSentence(doc); err != nil {
		d.logger.Debug("sentence rejected", logger.Format(format), violations(err))
		return phrase.Sentence{}, fmt.Errorf("%w: %w", ErrInvalidSentence, err)
	}
	return toSentence(doc), nil
}

// violations groups the field errors of a failed validation for logging.
func violations(err error) slog.Attr {
	verrs := validator.ExtractValidationErrors(err)
	errs := make([]error, len(verrs))
	for i, verr := range verrs {
		errs[i] = verr
	}
	return logger.Group("validation",
		logger.Count("violations", len(verrs)),
		logger.Errors(errs...),
	)
}

func (d *Decoder) document(data []byte, format string) (map[string]any, error) {
	name := normalizeFormat(format)
	fn, ok := d.unmarshal[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var raw map[string]any
	if err := fn(data, &raw); err != nil {
		return nil, fmt.Errorf("bundle: decoding %s: %w", name, err)
	}

	doc := make(map[string]any, len(raw))
	for k, v := range raw {
		doc[k] = normalize(v)
	}
	return doc, nil
}

// normalize rewrites YAML-style map[any]any nodes into map[string]any so
// numeric category keys such as `1:` become "1".
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, val := range node {
			out[i] = normalize(val)
		}
		return out
	}
	return v
}

// toSentence converts a validated document.
func toSentence(doc map[string]any) phrase.Sentence {
	var s phrase.Sentence
	if desc, ok := doc["description"].(string); ok {
		s.Description = desc
	}
	s.Variations = stringList(doc["variations"])

	values, _ := doc["values"].(map[string]any)
	if len(values) == 0 {
		return s
	}
	s.Values = make(map[string]phrase.ValueTemplate, len(values))
	for name, raw := range values {
		categories, _ := raw.(map[string]any)
		tmpl := make(phrase.ValueTemplate, len(categories))
		for category, phrases := range categories {
			tmpl[category] = stringList(phrases)
		}
		s.Values[name] = tmpl
	}
	return s
}

func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// FormatFromExtension maps a file name or extension to a format name:
// "greetings.yml" → "yaml", ".JSONC" → "jsonc". Unknown extensions are
// returned lowercased without the dot.
func FormatFromExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		ext = name
	}
	return normalizeFormat(ext)
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if format == "yml" {
		return FormatYAML
	}
	return format
}

var std = &Decoder{unmarshal: builtin(), logger: logger.Discard()}

// Decode parses a bundle with the built-in formats.
func Decode(data []byte, format string) (phrase.Bundle, error) {
	return std.Decode(data, format)
}

// DecodeSentence parses a single sentence with the built-in formats.
func DecodeSentence(data []byte, format string) (phrase.Sentence, error) {
	return std.DecodeSentence(data, format)
}
