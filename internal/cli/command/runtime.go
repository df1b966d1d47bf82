package command

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/yndnr/unityvault/internal/config"
	"github.com/yndnr/unityvault/internal/core/entropy"
	"github.com/yndnr/unityvault/internal/core/service"
	"github.com/yndnr/unityvault/internal/infra/confloader"
	"github.com/yndnr/unityvault/internal/infra/shutdown"
	"github.com/yndnr/unityvault/internal/storage"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
	"github.com/yndnr/unityvault/internal/telemetry/metric"
)

// shutdownTimeout bounds all cleanup hooks together.
const shutdownTimeout = 5 * time.Second

// Stack is a wired session with everything it needs to shut down cleanly.
type Stack struct {
	Session  *service.Session
	Metrics  *metric.Registry
	Shutdown *shutdown.Handler

	// MetricsAddr is the bound metrics address, nil when disabled.
	MetricsAddr net.Addr
}

// newStack opens the vault, builds the session and, if configured, starts
// the metrics endpoint.
func newStack(rt *Runtime, src entropy.Source) (*Stack, error) {
	log := rt.Log
	sh := shutdown.NewHandler(shutdownTimeout, log)

	vault, err := storage.OpenVault(rt.Config.Vault.Engine, log)
	if err != nil {
		return nil, err
	}
	sh.OnShutdown("vault", func(context.Context) error {
		return vault.Close()
	})

	reg := metric.NewRegistry()
	session, err := service.NewSession(
		service.NewTokenFactory(src),
		vault,
		service.WithLogger(log),
		service.WithMetrics(reg),
	)
	if err != nil {
		sh.Shutdown()
		return nil, err
	}
	if err := reg.Register(metric.NewCollector(session.State)); err != nil {
		sh.Shutdown()
		return nil, err
	}

	st := &Stack{Session: session, Metrics: reg, Shutdown: sh}

	if addr := rt.Config.Metrics.Addr; addr != "" {
		srv, bound, err := startMetrics(addr, reg.Handler(), log)
		if err != nil {
			sh.Shutdown()
			return nil, err
		}
		st.MetricsAddr = bound
		sh.OnShutdown("metrics", srv.Shutdown)
	}

	log.Info("session started",
		"session_id", session.ID(),
		"vault_engine", rt.Config.Vault.Engine)
	return st, nil
}

// startMetrics serves /metrics on addr until the returned server is shut down.
func startMetrics(addr string, h http.Handler, log logger.Logger) (*http.Server, net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("metrics endpoint listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics endpoint error", "error", err)
		}
	}()

	return srv, ln.Addr(), nil
}

// watchLogLevel re-reads the config file on change and applies log.level
// until ctx is done. It returns a nil watcher when no config file is in use.
func watchLogLevel(ctx context.Context, rt *Runtime) (*confloader.Watcher, error) {
	path := rt.Flags.Config
	if path == "" {
		return nil, nil
	}

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(rt.Log))
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	w.OnChange(func(string) {
		cfg, err := config.Load(path, rt.Flags.overrides())
		if err != nil {
			rt.Log.Warn("config reload rejected", "path", path, "error", err)
			return
		}
		prev := logger.GetLevel()
		if err := logger.SetLevel(cfg.Log.Level); err != nil {
			rt.Log.Warn("config reload rejected", "path", path, "error", err)
			return
		}
		if now := logger.GetLevel(); now != prev {
			rt.Log.Info("log level changed", "from", prev, "to", now)
		}
	})
	go w.Run(ctx)

	return w, nil
}
