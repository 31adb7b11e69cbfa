package phrase

import (
	"fmt"

	"github.com/dmitrymomot/phrase/core/config"
)

// Config holds the resolver settings that can come from the environment.
type Config struct {
	DefaultValueKey  string `env:"PHRASE_DEFAULT_VALUE_KEY" envDefault:"default"`
	EmptyValue       string `env:"PHRASE_EMPTY_VALUE"`
	Locale           string `env:"PHRASE_LOCALE" envDefault:"en-US"`
	ICU              bool   `env:"PHRASE_ICU" envDefault:"false"`
	MaxSubstitutions int    `env:"PHRASE_MAX_SUBSTITUTIONS" envDefault:"1000"`
}

// NewFromEnv loads Config from the environment and creates a Resolver with
// it. Options are applied after the config and may override it.
func NewFromEnv(opts ...Option) (*Resolver, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("phrase: %w", err)
	}
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
