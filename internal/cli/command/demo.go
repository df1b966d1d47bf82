package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/unityvault/internal/cli/output"
	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/core/entropy"
	"github.com/yndnr/unityvault/internal/core/service"
)

// DemoCommand runs one generate and commit in a fresh session and prints
// the resulting session view.
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "generate a token, secure --content with it and show the vault",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "content",
				Usage:    "content to secure",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return runDemo(c, entropy.NewCryptoSource())
		},
	}
}

func runDemo(c *cli.Context, src entropy.Source) error {
	rt, err := GetRuntime(c)
	if err != nil {
		return err
	}

	st, err := newStack(rt, src)
	if err != nil {
		return err
	}
	defer st.Shutdown.Shutdown()

	ctx := c.Context
	if _, err := st.Session.Generate(ctx); err != nil {
		return err
	}

	res, err := st.Session.Commit(ctx, c.String("content"))
	if err != nil {
		return err
	}

	view, err := st.Session.View(ctx)
	if err != nil {
		return err
	}
	if err := printView(c.App.Writer, rt.Formatter, view); err != nil {
		return err
	}

	switch res.Outcome {
	case domain.OutcomeSecured:
		return nil
	case domain.OutcomeMismatch:
		return res.Reason
	default:
		return errors.New("nothing committed: content is empty")
	}
}

// printView renders a session view. Tables get a status line followed by
// the vault rows; structured formats get the whole view.
func printView(w io.Writer, f output.Formatter, view *service.View) error {
	if _, ok := f.(*output.TableFormatter); !ok {
		return f.Format(w, view)
	}
	if _, err := fmt.Fprintf(w, "session %s  status %s\n\n", view.SessionID, view.Status); err != nil {
		return err
	}
	return f.Format(w, view.Entries)
}
