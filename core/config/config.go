package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config must not be nil")

	envOnce sync.Once
	cache   sync.Map // reflect.Type -> cached config value
)

// Load parses environment variables into cfg. The first call for a given
// type reads the environment; subsequent calls return the cached value.
// A .env file in the working directory is loaded once, if present.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// Missing .env files are expected outside local development.
	envOnce.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse %s from environment: %w", key, err)
	}

	cache.Store(key, *cfg)
	return nil
}

// MustLoad is like Load but panics on failure. Intended for process startup
// where a missing required variable should halt immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
