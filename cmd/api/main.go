package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Crestview-Financial/bank-portal-api/internal/adapters/httpapi"
	memcardcatalog "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/cardcatalog"
	memledger "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/ledger"
	memuserdir "github.com/Crestview-Financial/bank-portal-api/internal/adapters/memory/userdir"
	postgres "github.com/Crestview-Financial/bank-portal-api/internal/adapters/postgres"
	pgledger "github.com/Crestview-Financial/bank-portal-api/internal/adapters/postgres/ledger"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/accounts"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/auth"
	"github.com/Crestview-Financial/bank-portal-api/internal/app/payments"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/auth/tokens"
	platformclock "github.com/Crestview-Financial/bank-portal-api/internal/platform/clock"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/config"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/demo"
	"github.com/Crestview-Financial/bank-portal-api/internal/platform/metrics"
	platformrandom "github.com/Crestview-Financial/bank-portal-api/internal/platform/random"
	ledgerport "github.com/Crestview-Financial/bank-portal-api/internal/ports/out/ledger"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.TokenSecret == config.InsecureDefaultSecret {
		logger.Warn("TOKEN_SECRET is unset; tokens are signed with the well-known demo secret")
	}

	clk := platformclock.NewSystemClock()
	tokenSvc := tokens.New(tokens.Config{
		Secret: []byte(cfg.TokenSecret),
		TTL:    cfg.TokenTTL,
	}, clk)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		ledgerRepo ledgerport.Repository
		cleanup    func()
	)
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			logger.Error("postgres connection failed", slog.Any("error", err))
			os.Exit(1)
		}
		cleanup = pool.Close

		if err := postgres.Migrate(ctx, pool); err != nil {
			logger.Error("postgres migration failed", slog.Any("error", err))
			os.Exit(1)
		}

		repo := pgledger.NewRepo(pool)
		empty, err := repo.Empty(ctx)
		if err != nil {
			logger.Error("ledger inspection failed", slog.Any("error", err))
			os.Exit(1)
		}
		if empty {
			if err := repo.Seed(ctx, demo.Transactions()); err != nil {
				logger.Error("ledger seeding failed", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("seeded demo ledger")
		}
		ledgerRepo = repo
	default:
		ledgerRepo = memledger.NewRepo(demo.Transactions())
	}

	if cleanup != nil {
		defer cleanup()
	}

	authSvc := auth.NewService(memuserdir.NewDirectory(demo.Users()), tokenSvc)
	accountsSvc := accounts.NewService(memcardcatalog.NewCatalog(demo.Cards()))
	paymentsSvc := payments.NewService(ledgerRepo, clk, platformrandom.NewSystemSource())

	collector := metrics.NewCollector()

	api := httpapi.NewServer(authSvc, accountsSvc, paymentsSvc)
	api.Log = logger
	api.Metrics = collector

	limiter := httpapi.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst)
	defer limiter.Stop()

	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		AuthMiddleware: httpapi.NewAuthMiddleware(tokenSvc),
		LoginLimiter:   limiter.Middleware(),
		Logger:         logger,
		Metrics:        collector,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("api listening",
			slog.String("port", cfg.Port),
			slog.String("storage", cfg.StorageBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
