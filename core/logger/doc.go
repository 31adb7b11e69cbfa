// Package logger provides slog attribute helpers shared by the phrase
// packages.
//
// Helpers follow the empty Attr pattern: attributes built from nil or empty
// inputs are zero slog.Attr values, which slog drops, so call sites never
// need nil checks:
//
//	log.Warn("phrase: render failed",
//		logger.Component("phrase"),
//		logger.SentenceKey(key),
//		logger.Error(err),
//	)
//
// Libraries that accept a *slog.Logger default to Discard so they stay
// silent unless the caller wires a handler.
package logger
