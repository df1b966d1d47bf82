package repl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/unityvault/internal/cli/output"
	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/core/entropy"
	"github.com/yndnr/unityvault/internal/core/service"
	"github.com/yndnr/unityvault/internal/storage/memory"
)

func newTestREPL(t *testing.T, input string, degrees ...uint32) (*REPL, *bytes.Buffer, *service.Session) {
	t.Helper()
	session, err := service.NewSession(
		service.NewTokenFactory(entropy.NewFixedSource(degrees...)),
		memory.New(),
		service.WithSessionID("uvss-test"),
	)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	out := &bytes.Buffer{}
	r := New(session, WithIO(strings.NewReader(input), out))
	return r, out, session
}

func TestREPL_Run_Exit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"exit command", "exit\n"},
		{"quit command", "QUIT\n"},
		{"EOF", ""},
		{"EOF without newline", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestREPL(t, tt.input)
			if err := r.Run(context.Background()); err != nil {
				t.Errorf("Run() error = %v", err)
			}
		})
	}
}

func TestREPL_Run_EmptyLines(t *testing.T) {
	r, out, _ := newTestREPL(t, "\n\n\nexit\n")
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if prompts := strings.Count(out.String(), Prompt); prompts != 4 {
		t.Errorf("prompts = %d, want 4", prompts)
	}
	if r.history.Len() != 1 {
		t.Errorf("history len = %d, want 1", r.history.Len())
	}
}

func TestREPL_Run_ContextCancelled(t *testing.T) {
	session, _ := service.NewSession(service.NewTokenFactory(entropy.NewFixedSource(0)), memory.New())
	pr, pw := io.Pipe()
	defer pw.Close()

	r := New(session, WithIO(pr, &bytes.Buffer{}))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestREPL_SecureAndBurnFlow(t *testing.T) {
	input := strings.Join([]string{
		"generate",
		"write launch codes",
		"burn",
		"token",
		"vault",
		"exit",
	}, "\n") + "\n"

	r, out, session := newTestREPL(t, input, 0)
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"status: TOKEN_ARMED",
		"draft set (12 chars)",
		"1.0000|0.0000",
		"status: ENTRY_SECURED_TOKEN_VOID",
		"no active token",
		"launch codes",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if session.Status() != domain.StatusSecured {
		t.Errorf("Status() = %s, want %s", session.Status(), domain.StatusSecured)
	}
	if session.Draft() != "" {
		t.Errorf("Draft() = %q, want cleared", session.Draft())
	}
}

func TestREPL_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   []string
		line    string
		want    string
		wantErr string
	}{
		{name: "burn without token", line: "burn", want: "nothing to commit"},
		{name: "generate twice", setup: []string{"generate"}, line: "generate", wantErr: "UV-TOK-4090"},
		{name: "discard without token", line: "discard", wantErr: "UV-TOK-4040"},
		{name: "discard armed", setup: []string{"generate"}, line: "discard", want: "status: SYSTEM_READY"},
		{name: "empty vault", line: "vault", want: "vault is empty"},
		{name: "status", line: "status", want: "status: SYSTEM_READY"},
		{name: "help", line: "help", want: "write <text>"},
		{name: "unknown with suggestion", line: "st", wantErr: "did you mean: status"},
		{name: "unknown", line: "launch", wantErr: "type \"help\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, _ := newTestREPL(t, "", 90)
			for _, line := range tt.setup {
				if err := r.Execute(ctx, line); err != nil {
					t.Fatalf("setup %q error = %v", line, err)
				}
			}
			out.Reset()

			err := r.Execute(ctx, tt.line)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Execute(%q) error = %v, want %q", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute(%q) error = %v", tt.line, err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("Execute(%q) output = %q, want %q", tt.line, out.String(), tt.want)
			}
		})
	}
}

func TestREPL_WriteKeepsSpacing(t *testing.T) {
	r, _, session := newTestREPL(t, "")
	if err := r.Execute(context.Background(), "write   two  spaces"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if session.Draft() != "two  spaces" {
		t.Errorf("Draft() = %q, want %q", session.Draft(), "two  spaces")
	}
}

func TestREPL_JSONFormatter(t *testing.T) {
	r, out, _ := newTestREPL(t, "", 0)
	r.formatter = output.NewFormatter(output.FormatJSON, 4)

	if err := r.Execute(context.Background(), "generate"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), `"a": 1`) {
		t.Errorf("output = %q, want JSON token", out.String())
	}
}

func TestREPL_HistoryRedactsContent(t *testing.T) {
	r, out, _ := newTestREPL(t, "write top secret\nhistory\nexit\n")
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, line := range r.history.Entries() {
		if strings.Contains(line, "top secret") {
			t.Errorf("history kept content: %q", line)
		}
	}
	if !strings.Contains(out.String(), "write [REDACTED]") {
		t.Errorf("history output = %q", out.String())
	}
}
