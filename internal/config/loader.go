// internal/config/loader.go
//
// Settings loader with a degraded-mode fallback.
//
/*
Context
--------
`Load()` builds one immutable `Config` and caches it for the lifetime of
the process.  The primary path merges two layers (highest precedence
last):

  1. Optional `./.env` file — UTF-8 dotenv, the deployment's local file.
  2. Process environment variables.

The merged tree is unmarshalled over the literal defaults, so any key the
environment omits keeps its default, and the result is validated.
Coercion is strict: a non-integer SMTP_PORT, a non-boolean DEBUG, or a
missing SECRET_KEY / DATABASE_URL fails the attempt as a whole.

There is exactly one attempt per process.  When it fails — for any
reason — `Load()` reports the failure, announces that the built-in
fallback is in effect, and substitutes `Fallback()`.  Callers can never
receive an error, a nil Config, or a partially populated one.

Instrumentation
---------------
  • DEBUG spans — env file applied or skipped.
  • ERROR span  — the primary attempt failed, with the reason.
  • WARN  span  — fallback values in effect.
  • INFO  span  — “settings loaded”, naming the application identity.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed (bootstrap console).

Notes
-----
  • The `.env` path is resolved against the working directory, matching
    the deployment layout (compose mounts the file next to the binary).
  • Unknown environment keys are ignored, never rejected.  Key names are
    case-sensitive: a lowercase secret_key is an unknown key, not an
    alternate spelling of SECRET_KEY.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// EnvFile is the local environment-definition file consulted by the
// primary path.  A missing file is fine; an unreadable or malformed one is
// a primary failure.
const EnvFile = ".env"

var (
	current  atomic.Pointer[Config]
	loadOnce sync.Once
)

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load returns the process-wide settings record, constructing it on the
// first call.  It never fails: when the primary path cannot produce a
// valid Config, the literal fallback takes its place.  Every later call
// returns the same instance, regardless of how the environment has changed
// in the meantime.
func Load() *Config {
	loadOnce.Do(func() { current.Store(build()) })
	return current.Load()
}

// Get returns the already-constructed settings record, loading lazily when
// no caller has done so yet.  Exists so consumers read as consumers; boot
// code calls Load.
func Get() *Config { return Load() }

// build runs the single primary attempt and absorbs any failure.
func build() *Config {
	cfg, err := parse(EnvFile)
	if err != nil {
		zap.S().Errorw("settings load failed", "err", err)
		zap.S().Warnw("hard-coded fallback settings in effect",
			"app", DefaultAppName,
			"database_url", FallbackDatabaseURL,
		)
		f := Fallback()
		return &f
	}

	zap.S().Infow("settings loaded",
		"app", cfg.AppName,
		"version", cfg.Version,
		"debug", cfg.Debug,
	)
	return cfg
}

// parse is the primary path: defaults, then the optional env file, then
// the process environment, decoded strictly and validated.  It is the only
// place an error can originate; Load absorbs it.
func parse(envFile string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: optional dotenv file (lowest precedence).
	if err := k.Load(file.Provider(envFile), dotenv.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
		zap.S().Debugw("env file absent, environment only", "file", envFile)
	} else {
		zap.S().Debugw("env file applied", "file", envFile)
	}

	// Layer 2: process environment overrides the file.
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("environment overlay: %w", err)
	}

	cfg := defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: stringCoerceHook,
			Result:     &cfg,
			// Key matching is exact.  The decoder's default is
			// case-folded, which would let secret_key stand in for
			// SECRET_KEY instead of being ignored as unknown.
			MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
		},
	}); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if err := validateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}
	return &cfg, nil
}

/*──────────────────────────── decode hook ─────────────────────────────────*/

// stringCoerceHook converts the string values koanf collects from dotenv
// and environment sources into the model's int, int64, and bool fields.
// strconv does the parsing, so "587" and "true" convert, while "" and
// "notanumber" fail the decode.  The default weakly-typed behavior would
// turn an empty string into zero silently, which the loader's contract
// forbids.
func stringCoerceHook(from reflect.Kind, to reflect.Kind, data any) (any, error) {
	if from != reflect.String {
		return data, nil
	}
	s := data.(string)

	switch to {
	case reflect.Int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return n, nil
	case reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return n, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", s)
		}
		return b, nil
	}
	return data, nil
}
