package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/auth"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/bootstrap"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/completion"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/config"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/database"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/economics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/gateway"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/handler"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/payments"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/player"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/server"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/worker"

	_ "github.com/Aaron1234413/rallylife-ace-arena-sub008/docs"
)

//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs

// @title Ace Arena Session Rewards API
// @version 1.0
// @description Session reward previews, completion and club token payments.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load has applied .env, so the schema check sees the same variables
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initStdoutLogger(cfg)
		slog.Warn("File logging unavailable, logging to stdout only", "error", err)
	} else {
		defer logFile.Close()
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.RunMigrations {
		if err := database.Migrate(ctx, dbPool); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			dbPool.Close()
			os.Exit(1)
		}
	}

	schemas, err := validation.NewSchemaValidator()
	if err != nil {
		slog.Error("Failed to compile schemas", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	flags, err := bootstrap.LoadFeatureFlags(cfg.FeatureFlagsPath, schemas)
	if err != nil {
		slog.Error("Failed to load feature flags", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	handler.InitValidator()

	repos := bootstrap.InitializeRepositories(dbPool)
	gw := gateway.New(dbPool, schemas, cfg.RPCTimeout)
	calc := rewards.NewCalculator(economics.DefaultTable(), rewards.DefaultConfig())

	playerService := player.NewService(repos.Players, player.CacheConfig{Size: cfg.PlayerCacheSize, TTL: cfg.PlayerCacheTTL})
	completionService := completion.NewService(calc, gw, repos.Completions)

	bgCtx, stopBackground := context.WithCancel(context.Background())

	var paymentService payments.Service
	var sweeper *worker.CheckoutSweeper
	if cfg.PaymentsEnabled() {
		provider := payments.NewStripeProvider(cfg.StripeSecretKey)
		paymentService = payments.NewService(provider, gw, repos.Checkouts, payments.DefaultCatalog(), int64(cfg.TokenValueCents))

		sweeper = worker.NewCheckoutSweeper(repos.Checkouts, cfg.CheckoutSweepInterval, cfg.CheckoutMaxAge)
		sweeper.Start(bgCtx)
	}

	manager := bootstrap.StartRealtime(bgCtx, dbPool, schemas, cfg.RealtimeChannel, playerService)

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, server.Dependencies{
		DB:         dbPool,
		Verifier:   auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer),
		Calculator: calc,
		Players:    playerService,
		Completion: completionService,
		ClubTokens: gw,
		Payments:   paymentService,
		Flags:      flags,
		Realtime:   manager,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		Realtime:       manager,
		StopBackground: stopBackground,
		Sweeper:        sweeper,
		DBPool:         dbPool,
	})
}
