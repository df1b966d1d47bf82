package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/unityvault/internal/cli/output"
	"github.com/yndnr/unityvault/internal/config"
	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/infra/buildinfo"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
)

const runtimeKey = "runtime"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "unityvault",
		Usage:   "arm a single-use unit token, secure content with it, burn it",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ReplCommand(),
			DemoCommand(),
			VersionCommand(),
			ConfigCommand(),
		},
		Before: setup,
		Action: runRepl,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML configuration file",
			EnvVars: []string{"UNITYVAULT_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, warn, error (overrides config)",
		},
		&cli.StringFlag{
			Name:  "metrics",
			Usage: "serve Prometheus metrics on this address, e.g. 127.0.0.1:9464",
		},
	}
}

// GlobalFlags holds the parsed global flags.
type GlobalFlags struct {
	Config   string
	Output   string
	LogLevel string
	Metrics  string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:   c.String("config"),
		Output:   c.String("output"),
		LogLevel: c.String("log-level"),
		Metrics:  c.String("metrics"),
	}
}

// overrides maps flags onto config keys. Empty values are dropped by
// config.Load.
func (f *GlobalFlags) overrides() map[string]any {
	return map[string]any{
		"log.level":    f.LogLevel,
		"metrics.addr": f.Metrics,
	}
}

// Runtime is the state prepared before any command runs.
type Runtime struct {
	Flags     *GlobalFlags
	Config    *config.Config
	Log       logger.Logger
	Formatter output.Formatter
}

// setup loads configuration and installs the logger.
func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.Config, flags.overrides())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = &Runtime{
		Flags:     flags,
		Config:    cfg,
		Log:       log,
		Formatter: output.NewFormatter(format, cfg.Display.Precision),
	}
	return nil
}

// GetRuntime retrieves the runtime prepared by setup.
func GetRuntime(c *cli.Context) (*Runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt, nil
	}
	return nil, fmt.Errorf("command runtime not initialised")
}

// ExitCode maps an error returned by App().Run to a process exit status:
// 0 for nil, 2 for configuration errors, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case domain.GetErrorCode(err) == domain.ErrInvalidConfig.Code:
		return 2
	default:
		return 1
	}
}
