// Package shutdown coordinates process cleanup.
//
// WithSignals turns SIGINT and SIGTERM into context cancellation. Handler
// collects cleanup hooks (metrics endpoint, config watcher, vault) and runs
// them once under a shared timeout.
//
//	ctx, cancel := shutdown.WithSignals(context.Background())
//	defer cancel()
package shutdown
