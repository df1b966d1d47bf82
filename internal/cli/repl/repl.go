package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/unityvault/internal/cli/output"
	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/core/service"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
)

// Prompt is printed before every line.
const Prompt = "unityvault> "

// errQuit ends the loop without reporting an error.
var errQuit = errors.New("quit")

type verb struct {
	name  string
	usage string
	help  string
	run   func(r *REPL, ctx context.Context, arg string) error
}

func defaultVerbs() []verb {
	return []verb{
		{"generate", "generate", "arm a new token", (*REPL).generate},
		{"write", "write <text>", "set the pending content", (*REPL).write},
		{"burn", "burn", "verify the token, secure the content and burn the token", (*REPL).burn},
		{"discard", "discard", "drop the armed token without committing", (*REPL).discard},
		{"status", "status", "show the session status", (*REPL).status},
		{"token", "token", "show the armed token", (*REPL).token},
		{"vault", "vault", "list secured entries, newest first", (*REPL).vault},
		{"history", "history", "list commands of this run", (*REPL).showHistory},
		{"help", "help", "show this help", (*REPL).help},
		{"exit", "exit", "leave the session (also: quit)", (*REPL).quit},
		{"quit", "", "", (*REPL).quit},
	}
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	session   *service.Session
	formatter output.Formatter
	completer *Completer
	history   *History
	log       logger.Logger
	verbs     []verb
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithFormatter sets how tokens and entries are printed.
func WithFormatter(f output.Formatter) Option {
	return func(r *REPL) {
		r.formatter = f
	}
}

// WithLogger sets the REPL logger.
func WithLogger(l logger.Logger) Option {
	return func(r *REPL) {
		r.log = l
	}
}

// New creates a REPL driving session.
func New(session *service.Session, opts ...Option) *REPL {
	vs := defaultVerbs()
	names := make([]string, 0, len(vs))
	for _, v := range vs {
		names = append(names, v.name)
	}

	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		session:   session,
		formatter: output.NewFormatter(output.FormatTable, 4),
		completer: NewCompleter(names...),
		history:   NewHistory(),
		log:       logger.Default(),
		verbs:     vs,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads and executes lines until exit, end of input or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		reader := bufio.NewReader(r.input)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- line:
				case <-done:
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					readErr <- err
				}
				return
			}
		}
	}()

	fmt.Fprintf(r.output, "session %s  status %s\n", r.session.ID(), r.session.Status())
	fmt.Fprintln(r.output, `type "help" for commands`)

	for {
		fmt.Fprint(r.output, Prompt)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.output)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(r.output)
			select {
			case err := <-readErr:
				return err
			default:
				return nil
			}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.history.Add(line)

		err := r.Execute(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

// Execute runs one command line.
func (r *REPL) Execute(ctx context.Context, line string) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	name = strings.ToLower(name)

	ctx = logger.WithSessionID(logger.WithLogger(ctx, r.log), r.session.ID())
	if tok := r.session.ActiveToken(); tok != nil {
		ctx = logger.WithTokenID(ctx, tok.ID)
	}

	for _, v := range r.verbs {
		if v.name == name {
			err := v.run(r, ctx, strings.TrimLeft(arg, " "))
			if err != nil && !errors.Is(err, errQuit) {
				logger.L(ctx).Debug("repl command failed", "verb", name, "error", err)
			} else {
				logger.L(ctx).Debug("repl command", "verb", name)
			}
			return err
		}
	}

	if matches := r.completer.Complete(name); len(matches) > 0 {
		return fmt.Errorf("unknown command %q, did you mean: %s", name, strings.Join(matches, ", "))
	}
	return fmt.Errorf("unknown command %q, type \"help\"", name)
}

func (r *REPL) generate(ctx context.Context, _ string) error {
	tok, err := r.session.Generate(ctx)
	if err != nil {
		return err
	}
	if err := r.formatter.Format(r.output, tok); err != nil {
		return err
	}
	return r.printStatus()
}

func (r *REPL) write(_ context.Context, arg string) error {
	r.session.SetDraft(arg)
	if arg == "" {
		fmt.Fprintln(r.output, "draft cleared")
		return nil
	}
	fmt.Fprintf(r.output, "draft set (%d chars)\n", len([]rune(arg)))
	return nil
}

func (r *REPL) burn(ctx context.Context, _ string) error {
	res, err := r.session.CommitDraft(ctx)
	if err != nil {
		return err
	}

	switch res.Outcome {
	case domain.OutcomeSecured:
		if err := r.formatter.Format(r.output, res.Entry); err != nil {
			return err
		}
	case domain.OutcomeMismatch:
		fmt.Fprintf(r.output, "commit rejected: %v\n", res.Reason)
	case domain.OutcomeSkipped:
		fmt.Fprintln(r.output, "nothing to commit: arm a token and write content first")
	}
	return r.printStatus()
}

func (r *REPL) discard(ctx context.Context, _ string) error {
	if !r.session.Discard(ctx) {
		return domain.ErrNoActiveToken
	}
	fmt.Fprintln(r.output, "token discarded")
	return r.printStatus()
}

func (r *REPL) status(_ context.Context, _ string) error {
	return r.printStatus()
}

func (r *REPL) token(_ context.Context, _ string) error {
	tok := r.session.ActiveToken()
	if tok == nil {
		fmt.Fprintln(r.output, "no active token")
		return nil
	}
	return r.formatter.Format(r.output, tok)
}

func (r *REPL) vault(ctx context.Context, _ string) error {
	entries, err := r.session.Entries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(r.output, "vault is empty")
		return nil
	}
	return r.formatter.Format(r.output, entries)
}

func (r *REPL) showHistory(_ context.Context, _ string) error {
	for i, line := range r.history.Entries() {
		fmt.Fprintf(r.output, "%4d  %s\n", i+1, line)
	}
	return nil
}

func (r *REPL) help(_ context.Context, _ string) error {
	t := &output.Table{}
	t.SetHeaders("COMMAND", "DESCRIPTION")
	for _, v := range r.verbs {
		if v.usage == "" {
			continue
		}
		t.AddRow(v.usage, v.help)
	}
	return t.Render(r.output)
}

func (r *REPL) quit(_ context.Context, _ string) error {
	return errQuit
}

func (r *REPL) printStatus() error {
	_, err := fmt.Fprintf(r.output, "status: %s\n", r.session.Status())
	return err
}
