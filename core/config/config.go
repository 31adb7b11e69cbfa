package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first successful load of a
// type is cached; later calls with the same type receive the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil destination")
	}

	typ := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", typ, err)
	}

	cache[typ] = loaded
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on failure. Intended for startup code.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse parses environment variables into cfg without touching the cache.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil destination")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", reflect.TypeFor[T](), err)
	}
	return nil
}

// Reset clears the cache. Tests use it to reload a type after changing the
// environment.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
