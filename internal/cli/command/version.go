package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/unityvault/internal/infra/buildinfo"
)

// VersionCommand prints build information.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "show build information",
		Action: func(c *cli.Context) error {
			rt, err := GetRuntime(c)
			if err != nil {
				return err
			}
			return rt.Formatter.Format(c.App.Writer, buildinfo.Get())
		},
	}
}
