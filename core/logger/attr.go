package logger

import (
	"log/slog"
	"strconv"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Warn("msg", logger.Error(err)) without explicit nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Phrase Resolution
// ============================================================================

// Placeholder creates an attribute for a placeholder name.
func Placeholder(name string) slog.Attr {
	return slog.String("placeholder", name)
}

// Category creates an attribute for a value-template category key.
func Category(key string) slog.Attr {
	return slog.String("category", key)
}

// SentenceKey creates an attribute for a bundle key. Returns empty Attr for
// sentences rendered directly.
func SentenceKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("sentence_key", key)
}

// Locale creates an attribute for a locale identifier.
func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

// Format creates an attribute for a document format name.
func Format(format string) slog.Attr {
	return slog.String("format", format)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
