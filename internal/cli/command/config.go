package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/unityvault/internal/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "inspect configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "print the effective configuration (defaults, file, env and flags merged)",
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "check a configuration file without starting a session",
				ArgsUsage: "[file]",
				Action:    configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}
	return rt.Formatter.Format(c.App.Writer, rt.Config)
}

// configValidate checks the file given as argument, or --config. Env and
// flags still apply, so the result matches what a session would load.
func configValidate(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	path := c.Args().First()
	if path == "" {
		path = rt.Flags.Config
	}
	if path == "" {
		return fmt.Errorf("no configuration file given")
	}

	if _, err := config.Load(path, rt.Flags.overrides()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "%s: configuration is valid\n", path)
	return err
}
