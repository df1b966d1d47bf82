package command

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/unityvault/internal/cli/repl"
	"github.com/yndnr/unityvault/internal/core/entropy"
	"github.com/yndnr/unityvault/internal/infra/shutdown"
)

// ReplCommand runs the interactive session. It is also the default action.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "start an interactive session (default)",
		Action: runRepl,
	}
}

func runRepl(c *cli.Context) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	ctx, cancel := shutdown.WithSignals(c.Context)
	defer cancel()

	st, err := newStack(rt, entropy.NewCryptoSource())
	if err != nil {
		return err
	}
	defer st.Shutdown.Shutdown()

	w, err := watchLogLevel(ctx, rt)
	if err != nil {
		rt.Log.Warn("config watcher disabled", "error", err)
	}
	if w != nil {
		st.Shutdown.OnShutdown("config-watcher", func(context.Context) error {
			return w.Close()
		})
	}

	r := repl.New(st.Session,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithFormatter(rt.Formatter),
		repl.WithLogger(rt.Log),
	)
	return r.Run(ctx)
}
