package storage

import (
	"strings"

	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/core/service"
	"github.com/yndnr/unityvault/internal/storage/memory"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
)

// Vault engine names.
const (
	EngineMemory = "memory"
	EngineBadger = "badger"
)

// OpenVault opens the vault engine with the given name.
// An empty name selects the memory engine.
func OpenVault(engine string, log logger.Logger) (service.Vault, error) {
	switch strings.ToLower(engine) {
	case "", EngineMemory:
		return memory.New(), nil
	case EngineBadger:
		return NewBadgerVault(log)
	default:
		return nil, domain.ErrInvalidConfig.WithDetails("unknown vault engine " + engine)
	}
}
