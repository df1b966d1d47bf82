package logger

import (
	"log/slog"
	"strings"
)

// sensitiveKeys never reach a log with their value. Commit content is the
// only secret this program handles; the rest catch careless call sites.
var sensitiveKeys = map[string]struct{}{
	"content":  {},
	"draft":    {},
	"secret":   {},
	"password": {},
}

// sensitiveSuffixes match keys such as entry_content or pending_draft.
var sensitiveSuffixes = []string{"_content", "_draft", "_secret"}

const redactedValue = "[REDACTED]"

func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	case slog.KindString:
		if a.Value.String() == "" {
			return a
		}
	}

	if IsSensitiveKey(a.Key) {
		return slog.String(a.Key, redactedValue)
	}
	return a
}

// IsSensitiveKey reports whether values logged under key are redacted.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if _, ok := sensitiveKeys[k]; ok {
		return true
	}
	for _, s := range sensitiveSuffixes {
		if strings.HasSuffix(k, s) {
			return true
		}
	}
	return false
}
