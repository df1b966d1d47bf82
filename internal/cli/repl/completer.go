package repl

import (
	"sort"
	"strings"
)

// Completer provides verb completion for the REPL.
type Completer struct {
	verbs []string
}

// NewCompleter creates a completer over the given verbs.
func NewCompleter(verbs ...string) *Completer {
	c := &Completer{verbs: append([]string(nil), verbs...)}
	sort.Strings(c.verbs)
	return c
}

// Complete returns the verbs starting with prefix, sorted.
func (c *Completer) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, v := range c.verbs {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
