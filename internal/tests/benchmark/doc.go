// Package benchmark provides performance benchmarks for unityvault.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Compare vault engines only:
//
//	go test -bench=BenchmarkVault -benchmem ./internal/tests/benchmark/...
package benchmark
