package repl

import "strings"

// DefaultHistorySize bounds the in-memory history.
const DefaultHistorySize = 1000

// redactedVerbs carry secret content after the verb.
var redactedVerbs = map[string]bool{
	"write": true,
}

// History keeps the commands of the current REPL run.
//
// It is never written to disk, and the argument of a content verb such as
// "write" is replaced so secrets do not linger in memory after submission.
type History struct {
	entries []string
	maxSize int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		entries: make([]string, 0),
		maxSize: DefaultHistorySize,
	}
}

// Add records a command line.
func (h *History) Add(line string) {
	verb, rest, _ := strings.Cut(line, " ")
	if redactedVerbs[strings.ToLower(verb)] && strings.TrimSpace(rest) != "" {
		line = verb + " [REDACTED]"
	}

	h.entries = append(h.entries, line)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[1:]
	}
}

// Get returns the history entry at index (0 = most recent).
func (h *History) Get(index int) string {
	if index < 0 || index >= len(h.entries) {
		return ""
	}
	return h.entries[len(h.entries)-1-index]
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns the history, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
