// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals the merged Koanf tree into a `Config` instance.  Any
// validation error fails the primary attempt, which is what sends the
// loader down the fallback path.
//
// The only built-in rule in play is `required`, attached to the two fields
// with no safe default: `SECRET_KEY` and `DATABASE_URL`.  Anything
// stricter would reject values the deployment has always accepted; range
// and format concerns belong to the packages that consume the values.
//
// Field names in error messages are rewritten to the environment keys via
// RegisterTagNameFunc, so a failure names the key the operator must fix
// (`SECRET_KEY`, not `SecretKey`).
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if tag := fld.Tag.Get("koanf"); tag != "" {
			return tag
		}
		return fld.Name
	})
	return val
}

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
