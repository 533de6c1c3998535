// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountservice "github.com/mainalysis/domain-analyzer/pkg/account/service"
	accountpg "github.com/mainalysis/domain-analyzer/pkg/account/store/pg"
	analysisservice "github.com/mainalysis/domain-analyzer/pkg/analysis/service"
	analysispg "github.com/mainalysis/domain-analyzer/pkg/analysis/store/pg"
	apphttp "github.com/mainalysis/domain-analyzer/pkg/app/http"
	"github.com/mainalysis/domain-analyzer/pkg/auth"
	"github.com/mainalysis/domain-analyzer/pkg/config"
	creditservice "github.com/mainalysis/domain-analyzer/pkg/credit/service"
	creditpg "github.com/mainalysis/domain-analyzer/pkg/credit/store/pg"
	featuredservice "github.com/mainalysis/domain-analyzer/pkg/featured/service"
	featuredpg "github.com/mainalysis/domain-analyzer/pkg/featured/store/pg"
	"github.com/mainalysis/domain-analyzer/pkg/payment/paypal"
	paymentservice "github.com/mainalysis/domain-analyzer/pkg/payment/service"
	"github.com/mainalysis/domain-analyzer/pkg/pgutil"
	"github.com/mainalysis/domain-analyzer/pkg/registry"
	"github.com/mainalysis/domain-analyzer/pkg/valuation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	usdPerCredit, err := decimal.NewFromString(cfg.Credits.USDPerCredit)
	if err != nil {
		return fmt.Errorf("invalid credits.usd_per_credit: %w", err)
	}

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	accountStore := accountpg.NewStore(db)
	creditStore := creditpg.NewStore(db)
	analysisStore := analysispg.NewStore(db, creditStore)
	featuredStore := featuredpg.NewStore(db)

	provider := valuation.NewClient(&cfg.Valuation)
	checkout := paypal.NewClient(&cfg.PayPal)
	registryClient := registry.NewClient(&cfg.Registry)
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	accountService := accountservice.NewService(accountStore, logger, cfg.Auth.VerifyWalletSignature)
	creditService := creditservice.NewService(creditStore, logger)
	analysisService := analysisservice.NewLog(
		analysisservice.NewService(analysisStore, provider, logger),
		logger,
	)
	paymentService := paymentservice.NewService(checkout, creditStore, logger, usdPerCredit)
	featuredService := featuredservice.NewService(featuredStore, logger)
	registryHandler := registry.NewHandler(registryClient, logger)

	router := chi.NewRouter()

	// Middleware stack
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	router.Use(apphttp.CORS)

	// Health check
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	router.Route("/api", func(r chi.Router) {
		accountservice.RegisterRoutes(r, accountService, logger)
		creditservice.RegisterRoutes(r, creditService, logger)
		analysisservice.RegisterRoutes(r, analysisService, logger)
		paymentservice.RegisterRoutes(r, paymentService, logger)
		featuredservice.RegisterRoutes(r, featuredService, verifier, logger)
		registryHandler.RegisterRoutes(r)
	})

	stopMetrics := s.startMetricsServer(logger)
	defer stopMetrics()

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// startMetricsServer exposes Prometheus metrics on a separate port so the
// public API surface never serves them. Returns a stopper; a no-op when
// monitoring is disabled.
func (s *Server) startMetricsServer(logger *zap.Logger) func() {
	if !s.cfg.Monitoring.Enabled {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Monitoring.MetricsPort),
		Handler: mux,
	}

	go func() {
		logger.Info("Metrics enabled", zap.Int("port", s.cfg.Monitoring.MetricsPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server exited", zap.Error(err))
		}
	}()

	return func() { _ = srv.Close() }
}
