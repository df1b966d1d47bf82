package domain

import (
	"log/slog"
	"time"
)

// TimestampLayout is the wall-clock display layout of vault entries.
const TimestampLayout = "15:04:05"

// VaultEntry is an immutable record of a secured submission.
//
// Every entry corresponds to a token that passed IsUnit at commit time.
type VaultEntry struct {
	// ID is copied from the burned token.
	ID string `json:"id" yaml:"id"`

	// Content is the secret payload supplied at commit.
	Content string `json:"content" yaml:"content"`

	// Signature is FormatSignature(a, b) of the burned token.
	Signature string `json:"signature" yaml:"signature"`

	// Timestamp is the local commit time, second precision.
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// NewVaultEntry builds the entry for a token consumed at now.
func NewVaultEntry(tok *Token, content string, now time.Time) VaultEntry {
	return VaultEntry{
		ID:        tok.ID,
		Content:   content,
		Signature: tok.Signature(),
		Timestamp: now.Local().Format(TimestampLayout),
	}
}

// LogValue omits Content so that an entry can be logged whole.
func (e VaultEntry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", e.ID),
		slog.String("signature", e.Signature),
		slog.String("timestamp", e.Timestamp),
		slog.Int("content_len", len(e.Content)),
	)
}
