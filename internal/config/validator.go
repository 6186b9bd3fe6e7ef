// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after the
// merged Koanf tree is unmarshalled, defaulted, and secret-resolved.  Any
// tag mismatch or validation error aborts startup, ensuring the binary
// never runs with partial, malformed, or missing configuration.
//
// Besides `required`, the model leans on `hostname_port` for the listen
// address, `oneof` for the geo provider, and `len=2` for the ISO country
// code.  Custom rules—e.g., “dsn must contain at most one %s verb”—can be
// registered here as the configuration surface grows.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
