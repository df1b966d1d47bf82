// Package config defines the unityvault configuration.
//
//   - spec.go: Config struct definition
//   - default.go: default values
//   - verify.go: validation
//   - load.go: loading through internal/infra/confloader
//
// Sources, lowest to highest priority: defaults, YAML file, UNITYVAULT_*
// environment variables, command-line flags.
package config
