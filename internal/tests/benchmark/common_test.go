package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/core/service"
	"github.com/yndnr/unityvault/internal/storage"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
)

// EntryCounts defines prefilled vault sizes for read benchmarks.
var EntryCounts = []int{100, 1000, 10000}

// Engines lists the vault backends under test.
var Engines = []string{storage.EngineMemory, storage.EngineBadger}

var quietLog = logger.Discard()

// openVault opens a vault of the given engine or fails the benchmark.
func openVault(b *testing.B, engine string) service.Vault {
	b.Helper()
	v, err := storage.OpenVault(engine, quietLog)
	if err != nil {
		b.Fatalf("OpenVault(%s) failed: %v", engine, err)
	}
	b.Cleanup(func() { v.Close() })
	return v
}

// prefillVault appends count entries.
func prefillVault(ctx context.Context, b *testing.B, v service.Vault, count int) {
	b.Helper()
	for i := 0; i < count; i++ {
		e := domain.VaultEntry{
			ID:        fmt.Sprintf("id%06d", i),
			Content:   fmt.Sprintf("entry %d", i),
			Signature: "1.0000|0.0000",
			Timestamp: "12:00:00",
		}
		if err := v.Append(ctx, e); err != nil {
			b.Fatalf("Append failed: %v", err)
		}
	}
}

// reportMemory reports heap usage after a forced GC.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.HeapAlloc)/1024/1024, prefix+"_heap_MB")
}
