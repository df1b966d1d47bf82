package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyVault(&cfg.Vault); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	if err := verifyMetrics(&cfg.Metrics); err != nil {
		return err
	}
	if cfg.Display.Precision < 0 || cfg.Display.Precision > MaxPrecision {
		return domain.ErrInvalidConfig.WithDetails(
			fmt.Sprintf("display.precision must be between 0 and %d", MaxPrecision))
	}
	return nil
}

func verifyVault(cfg *VaultSection) error {
	switch strings.ToLower(cfg.Engine) {
	case "memory", "badger":
		return nil
	default:
		return domain.ErrInvalidConfig.WithDetails("vault.engine must be memory or badger, got " + cfg.Engine)
	}
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return domain.ErrInvalidConfig.WithDetails("log.level: " + err.Error())
	}
	if _, err := logger.ParseFormat(cfg.Format); err != nil {
		return domain.ErrInvalidConfig.WithDetails("log.format: " + err.Error())
	}
	return nil
}

func verifyMetrics(cfg *MetricsSection) error {
	if cfg.Addr == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return domain.ErrInvalidConfig.WithDetails("metrics.addr: " + err.Error()).WithCause(err)
	}
	return nil
}
