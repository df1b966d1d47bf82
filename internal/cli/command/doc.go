// Package command defines the unityvault command line with urfave/cli/v2.
//
//   - root.go: application, global flags, config and logger setup
//   - runtime.go: session wiring shared by commands (vault, metrics, shutdown)
//   - repl.go: interactive session, the default action
//   - demo.go: one generate and commit in a fresh session
//   - version.go, config.go: informational commands
package command
