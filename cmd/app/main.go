// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proposal-ai-subscription/internal/config"
	"proposal-ai-subscription/internal/domain/model"
	pg "proposal-ai-subscription/internal/infra/db/postgres"
	"proposal-ai-subscription/internal/infra/logging"
	"proposal-ai-subscription/internal/infra/metrics"
	"proposal-ai-subscription/internal/infra/payment"
	red "proposal-ai-subscription/internal/infra/redis"
	"proposal-ai-subscription/internal/infra/web"
	"proposal-ai-subscription/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 10)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	// ---- Catalog & repositories ----
	catalog := model.NewCatalog(cfg.Plans)
	subRepo := pg.NewSubscriptionRepoCacheDecorator(pg.NewPostgresSubscriptionRepo(pool), redisClient, cfg.Redis.TTL)
	proposalRepo := pg.NewPostgresProposalRepo(pool)
	quota := red.NewMonthlyQuota(redisClient)

	// ---- Payment gateway ----
	gateway, err := payment.NewPayPalGateway(cfg.PayPal.ClientID, cfg.PayPal.SecretKey, cfg.PayPal.BrandName, cfg.PayPal.Sandbox, logger)
	if err != nil {
		log.Fatalf("paypal gateway: %v", err)
	}

	// ---- Use cases ----
	planUC := usecase.NewPlanUseCase(catalog)
	checkoutUC := usecase.NewCheckoutUseCase(catalog, gateway, logger)
	activationUC := usecase.NewActivationUseCase(subRepo, gateway, logger)
	subUC := usecase.NewSubscriptionUseCase(subRepo, logger)
	proposalUC := usecase.NewProposalUseCase(proposalRepo, quota, subUC, cfg.Quota.FreeMonthlyProposals, logger)

	// ---- HTTP server ----
	auth := web.NewAuthManager(cfg.Auth.JWTSecret, cfg.Auth.TTL)
	srv := web.NewServer(checkoutUC, activationUC, subUC, planUC, proposalUC, auth, cfg.Server.BaseURL, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
			cancel()
		}
	}()

	// ---- Subscription gauge snapshots ----
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				counts, err := subRepo.CountByStatus(ctx)
				if err != nil {
					logger.Warn().Err(err).Msg("subscription count snapshot failed")
					continue
				}
				metrics.SetSubscriptionsTotal(counts)
			}
		}
	}()

	// ---- Shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown error")
	}
}
