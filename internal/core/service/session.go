package service

import (
	"context"
	"sync"
	"time"

	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
	"github.com/yndnr/unityvault/internal/telemetry/metric"
)

// Vault defines the storage interface for secured entries.
//
// Implementations are append-only: there is no update or delete.
type Vault interface {
	// Append stores an entry as the newest one.
	Append(ctx context.Context, entry domain.VaultEntry) error

	// All returns every entry, newest first.
	All(ctx context.Context) ([]domain.VaultEntry, error)

	// Len returns the number of entries.
	Len(ctx context.Context) (int, error)

	// Close releases the backend.
	Close() error
}

// CommitResult reports the outcome of a commit attempt.
type CommitResult struct {
	// Outcome is secured, mismatch or skipped.
	Outcome domain.Outcome

	// Status is the session status after the attempt.
	Status domain.Status

	// Entry is the stored entry when Outcome is secured.
	Entry *domain.VaultEntry

	// Reason explains a non-secured outcome.
	// It is ErrUnityCheckFailed on mismatch, nil otherwise.
	Reason error
}

// View is a read-only snapshot of a session.
type View struct {
	SessionID string              `json:"session_id" yaml:"session_id"`
	Status    domain.Status       `json:"status" yaml:"status"`
	Token     *domain.Token       `json:"token,omitempty" yaml:"token,omitempty"`
	Draft     string              `json:"draft,omitempty" yaml:"draft,omitempty"`
	Entries   []domain.VaultEntry `json:"vault" yaml:"vault"`
}

// Session owns the active token, the pending draft and the vault.
//
// All operations take the session mutex; no operation observes a state in
// which the vault holds an entry while its token is still armed.
type Session struct {
	mu sync.Mutex

	id      string
	factory TokenFactory
	vault   Vault
	now     func() time.Time
	log     logger.Logger
	metrics *metric.Registry

	active *domain.Token
	draft  string
	last   domain.Outcome
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l logger.Logger) SessionOption {
	return func(s *Session) {
		s.log = l
	}
}

// WithMetrics sets the metrics registry.
func WithMetrics(m *metric.Registry) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithClock overrides the commit timestamp source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// WithSessionID sets a fixed session ID instead of generating one.
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates a session in SYSTEM_READY state.
func NewSession(factory TokenFactory, vault Vault, opts ...SessionOption) (*Session, error) {
	s := &Session{
		factory: factory,
		vault:   vault,
		now:     time.Now,
		log:     logger.Default(),
		last:    domain.OutcomeNone,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.id == "" {
		id, err := domain.GenerateSessionID()
		if err != nil {
			return nil, err
		}
		s.id = id
	}
	s.log = s.log.With("session_id", s.id)

	return s, nil
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Generate arms a new token.
//
// It fails with ErrTokenAlreadyArmed while a token is active, leaving that
// token in place, and with ErrEntropyUnavailable when no secure random
// value can be drawn. Neither failure changes the status.
func (s *Session) Generate(ctx context.Context) (*domain.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithContext(ctx)

	if s.active != nil {
		log.Debug("generate blocked, token already armed", "token_id", s.active.ID)
		return nil, domain.ErrTokenAlreadyArmed.WithDetails("token " + s.active.ID)
	}

	tok, err := s.factory.CreateToken()
	if err != nil {
		s.metrics.IncEntropyFailure()
		log.Error("token generation failed", "error", err)
		return nil, err
	}

	s.active = tok
	s.last = domain.OutcomeNone
	s.metrics.IncGenerated()

	log.Info("token armed", "token_id", tok.ID, "status", s.statusLocked())
	return tok.Clone(), nil
}

// SetDraft replaces the pending content input.
func (s *Session) SetDraft(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = content
}

// Draft returns the pending content input.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// CommitDraft commits the pending content input.
func (s *Session) CommitDraft(ctx context.Context) (*CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, s.draft)
}

// Commit verifies the active token and, if it holds, secures content in
// the vault and burns the token.
//
// A missing token or empty content is a guard: the result is skipped and
// nothing changes. A failed unity check keeps the token and the draft and
// moves the status to CRITICAL_FAILURE_MATH_MISMATCH. The returned error
// is reserved for vault backend failures, in which case the token is kept
// and the status is unchanged.
func (s *Session) Commit(ctx context.Context, content string) (*CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, content)
}

func (s *Session) commitLocked(ctx context.Context, content string) (*CommitResult, error) {
	log := s.log.WithContext(ctx)

	if s.active == nil || content == "" {
		s.metrics.IncCommit(string(domain.OutcomeSkipped))
		log.Debug("commit skipped, precondition not met",
			"token_armed", s.active != nil,
			"content_empty", content == "")
		return &CommitResult{
			Outcome: domain.OutcomeSkipped,
			Status:  s.statusLocked(),
		}, nil
	}

	tok := s.active
	if !domain.IsUnit(tok.A, tok.B) {
		s.last = domain.OutcomeMismatch
		s.metrics.IncCommit(string(domain.OutcomeMismatch))
		log.Warn("unity check failed, token kept",
			"token_id", tok.ID,
			"signature", tok.Signature())
		return &CommitResult{
			Outcome: domain.OutcomeMismatch,
			Status:  s.statusLocked(),
			Reason:  domain.ErrUnityCheckFailed.WithDetails("token " + tok.ID),
		}, nil
	}

	entry := domain.NewVaultEntry(tok, content, s.now())
	if err := s.vault.Append(ctx, entry); err != nil {
		log.Error("vault append failed, token kept", "token_id", tok.ID, "error", err)
		if domain.IsDomainError(err, "") {
			return nil, err
		}
		return nil, domain.ErrVaultStorage.WithCause(err)
	}

	// Burn: the token is dropped and not retained anywhere.
	s.active = nil
	s.draft = ""
	s.last = domain.OutcomeSecured
	s.metrics.IncCommit(string(domain.OutcomeSecured))

	log.Info("entry secured, token burned", "entry", entry)

	return &CommitResult{
		Outcome: domain.OutcomeSecured,
		Status:  s.statusLocked(),
		Entry:   &entry,
	}, nil
}

// Discard drops an armed token without committing it.
//
// It reports whether a token was discarded. The status returns to
// SYSTEM_READY, which also clears a math mismatch.
func (s *Session) Discard(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return false
	}

	id := s.active.ID
	s.active = nil
	s.last = domain.OutcomeNone
	s.metrics.IncDiscarded()

	s.log.WithContext(ctx).Info("token discarded", "token_id", id)
	return true
}

// Status returns the current display status.
func (s *Session) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

// ActiveToken returns a copy of the active token, or nil.
func (s *Session) ActiveToken() *domain.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.Clone()
}

// Entries returns the vault contents, newest first.
func (s *Session) Entries(ctx context.Context) ([]domain.VaultEntry, error) {
	return s.vault.All(ctx)
}

// View returns a consistent snapshot of the session.
func (s *Session) View(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.vault.All(ctx)
	if err != nil {
		return nil, err
	}

	return &View{
		SessionID: s.id,
		Status:    s.statusLocked(),
		Token:     s.active.Clone(),
		Draft:     s.draft,
		Entries:   entries,
	}, nil
}

// State reports whether a token is armed and how many entries are stored.
// It backs the metrics collector.
func (s *Session) State() (armed bool, entries int) {
	s.mu.Lock()
	armed = s.active != nil
	s.mu.Unlock()

	n, err := s.vault.Len(context.Background())
	if err != nil {
		return armed, 0
	}
	return armed, n
}

func (s *Session) statusLocked() domain.Status {
	return domain.DeriveStatus(s.active != nil, s.last)
}
