package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pragadeesh891/trolley/internal/assist"
	"github.com/pragadeesh891/trolley/internal/httpx"
	"github.com/pragadeesh891/trolley/internal/inventory"
	"github.com/pragadeesh891/trolley/internal/payment"
	"github.com/pragadeesh891/trolley/internal/pkg/cache"
	"github.com/pragadeesh891/trolley/internal/pkg/config"
	"github.com/pragadeesh891/trolley/internal/pkg/telemetry"
	"github.com/pragadeesh891/trolley/internal/receipt"
	"github.com/pragadeesh891/trolley/internal/session"
	"github.com/pragadeesh891/trolley/internal/store"
	"github.com/pragadeesh891/trolley/internal/triplog/sqlite"
)

const serviceName = "trolleyd"

func main() {
	if err := run(); err != nil {
		slog.Error("trolleyd exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	telemetry.InitLogger(serviceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, serviceName)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			slog.Error("tracer shutdown failed", "error", err)
		}
	}()

	catalog := store.DefaultCatalog()
	ledger := inventory.NewLedger(catalog)
	registry := session.NewRegistry(catalog, ledger, cfg.PairCode)

	tripLog, err := sqlite.Open(cfg.TripLogPath)
	if err != nil {
		return err
	}
	defer tripLog.Close()

	provider := payment.NewInMemory(cfg.ChargeLimit)

	// With no Redis configured, checkout retries charge twice; acceptable
	// for the demo fleet, so the cache is opt-in.
	var idem *payment.Idempotent
	if cfg.RedisAddr != "" {
		idem = payment.NewIdempotent(provider, cache.NewRedis(cfg.RedisAddr, serviceName))
	}

	handler := httpx.NewHandler(
		catalog,
		registry,
		provider,
		idem,
		receipt.LogSender{},
		tripLog,
		assist.Unavailable{}, // translation service not wired in this build
		assist.Unavailable{},
		assist.PatternClassifier{},
		assist.NewResponder(rand.New(rand.NewSource(time.Now().UnixNano()))),
	)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpx.NewRouter(handler),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("trolleyd listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
