package config

import (
	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/infra/confloader"
)

// Load builds a Config from defaults, the optional file at path, the
// environment and the given overrides, then verifies it.
//
// Overrides use dotted keys (e.g. "log.level") and win over every other
// source. Empty string values are ignored so unset flags do not mask
// file or env values.
func Load(path string, overrides map[string]any) (*Config, error) {
	cfg := Default()

	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOverrides(nonEmpty(overrides)),
	)
	if err := l.Load(cfg); err != nil {
		return nil, domain.ErrInvalidConfig.WithCause(err)
	}

	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func nonEmpty(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}
