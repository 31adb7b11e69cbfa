// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package uses the caarlos0/env library for parsing environment variables
// into struct fields. It never reads files; variables must already be present
// in the process environment.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/phrase/core/config"
//
//	type RenderConfig struct {
//		Locale     string `env:"PHRASE_LOCALE" envDefault:"en-US"`
//		EmptyValue string `env:"PHRASE_EMPTY_VALUE"`
//		ICU        bool   `env:"PHRASE_ICU" envDefault:"false"`
//	}
//
//	func main() {
//		var cfg RenderConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 RenderConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 RenderConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Parse bypasses the cache and Reset clears it.
package config
