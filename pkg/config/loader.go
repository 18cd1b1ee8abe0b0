package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[string]any)

	dotenvOnce sync.Once
)

// Load parses environment variables into v. The first successful parse of a
// given type is cached; later calls for the same type return the cached
// value. A .env file, when present, is loaded into the environment before
// the first parse anywhere in the process.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilConfig
	}

	// A missing .env file is fine; explicit environment always wins anyway.
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	key := fmt.Sprintf("%T", *v)

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	cache[key] = *v
	return nil
}

// Reset drops all cached configurations. It exists for tests that vary the
// environment between loads.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[string]any)
}
