// Package confloader loads layered configuration with koanf.
//
// Sources, lowest to highest priority:
//
//  1. Defaults already present in the target struct
//  2. A YAML file
//  3. UNITYVAULT_* environment variables
//  4. A map of overrides, normally command-line flags
//
// Watcher reports changes to the configuration file through fsnotify so
// long-running commands can pick up a new log level without restarting.
package confloader
