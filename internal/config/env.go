package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Env is a snapshot of environment-style key/value settings. Keys are case-sensitive.
// A key that is absent resolves to its default; a key present with an empty value
// is used as-is.
type Env map[string]string

// FromOS captures the current process environment.
func FromOS() Env {
	environ := os.Environ()
	env := make(Env, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Lookup returns the value stored under key and whether it was present.
func (e Env) Lookup(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

// Get returns the value stored under key, or fallback when the key is absent.
func (e Env) Get(key, fallback string) string {
	if value, ok := e[key]; ok {
		return value
	}
	return fallback
}

// Merge combines layers into a fresh Env. Later layers take precedence.
func Merge(layers ...Env) Env {
	out := make(Env)
	for _, layer := range layers {
		for key, value := range layer {
			out[key] = value
		}
	}
	return out
}

func (e Env) floatValue(key, fallback string) (float64, error) {
	raw := e.Get(key, fallback)
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, newError(ErrInvalidNumericValue, key, raw, err)
	}
	return value, nil
}

func (e Env) intValue(key, fallback string) (int, error) {
	raw := e.Get(key, fallback)
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newError(ErrInvalidNumericValue, key, raw, err)
	}
	return value, nil
}

func (e Env) decimalValue(key, fallback string) (decimal.Decimal, error) {
	raw := e.Get(key, fallback)
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, newError(ErrInvalidNumericValue, key, raw, err)
	}
	return value, nil
}

func (e Env) optionalValue(key string) *string {
	value, ok := e[key]
	if !ok {
		return nil
	}
	return &value
}
