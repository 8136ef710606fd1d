// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"marketplace-workers/internal/common/aws"
	"marketplace-workers/internal/common/camunda"
	"marketplace-workers/internal/common/config"
	"marketplace-workers/internal/common/database"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/common/observability"

	// Assessment Workers (3)
	er "marketplace-workers/internal/workers/assessment/estimate-roi"
	rm "marketplace-workers/internal/workers/assessment/recommend-modules"
	rpt "marketplace-workers/internal/workers/assessment/resolve-pricing-tier"

	// Marketplace Workers (1)
	cmp "marketplace-workers/internal/workers/marketplace/calculate-module-price"

	// Revenue Workers (2)
	csf "marketplace-workers/internal/workers/revenue/calculate-sponsorship-fee"
	dr "marketplace-workers/internal/workers/revenue/distribute-revenue"

	// Communication Workers (1)
	sp "marketplace-workers/internal/workers/communication/send-proposal"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog, err := logger.Build(logger.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Service:     cfg.App.Name,
		Environment: cfg.App.Environment,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	zapLog.Info("Starting worker manager...", zap.String("version", cfg.App.Version))

	ctx := context.Background()

	obs, err := observability.New(cfg.App.Name, nil)
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}
	if err := obs.EnableTracing(ctx, cfg.App.Name, cfg.App.Version, observability.TracingConfig{
		Enabled:      cfg.Tracing.Enabled,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		Insecure:     cfg.Tracing.Insecure,
		SampleRate:   cfg.Tracing.SampleRate,
	}); err != nil {
		zapLog.Fatal("tracing init failed", zap.Error(err))
	}

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: cfg.Camunda.UsePlaintext,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init AWS Clients ---
	var (
		sender    sp.EmailSender
		publisher dr.EventPublisher
	)
	awsCfg := cfg.Integrations.AWS
	if awsCfg.SES.Enabled || awsCfg.SNS.Enabled {
		sdkCfg, err := aws.LoadConfig(ctx, awsCfg.Region)
		if err != nil {
			zapLog.Fatal("aws config load failed", zap.Error(err))
		}
		if awsCfg.SES.Enabled {
			sender = aws.NewSESClient(sdkCfg, awsCfg.SES.FromEmail, awsCfg.SES.ConfigurationSet)
		}
		if awsCfg.SNS.Enabled {
			publisher = aws.NewSNSClient(sdkCfg, awsCfg.SNS.RevenueTopicARN)
		}
	}
	zapLog.Info("AWS clients initialized",
		zap.Bool("ses", sender != nil),
		zap.Bool("sns", publisher != nil),
	)

	// --- Register Workers ---
	runner := camunda.NewRunner(zeebe.GetClient(), obs, log)

	// --- 1. Assessment Workers (3) ---
	{
		wc := config.GetWorkerConfig(cfg, er.TaskType)
		handler, err := er.NewHandler(er.NewConfig(wc), log)
		if err != nil {
			zapLog.Fatal("failed to create estimate-roi handler", zap.Error(err))
		}
		runner.Start(er.TaskType, wc, handler.Handle)
	}

	{
		wc := config.GetWorkerConfig(cfg, rm.TaskType)
		handler, err := rm.NewHandler(rm.NewConfig(wc), log)
		if err != nil {
			zapLog.Fatal("failed to create recommend-modules handler", zap.Error(err))
		}
		runner.Start(rm.TaskType, wc, handler.Handle)
	}

	{
		wc := config.GetWorkerConfig(cfg, rpt.TaskType)
		handler, err := rpt.NewHandler(rpt.NewConfig(wc, cfg.Pricing.Tiers), log)
		if err != nil {
			zapLog.Fatal("failed to create resolve-pricing-tier handler", zap.Error(err))
		}
		runner.Start(rpt.TaskType, wc, handler.Handle)
	}

	// --- 2. Marketplace Workers (1) ---
	{
		wc := config.GetWorkerConfig(cfg, cmp.TaskType)
		handler, err := cmp.NewHandler(cmp.NewConfig(wc, cfg.Pricing.CacheTTL()), pg.DB, redis.Client, log)
		if err != nil {
			zapLog.Fatal("failed to create calculate-module-price handler", zap.Error(err))
		}
		runner.Start(cmp.TaskType, wc, handler.Handle)
	}

	// --- 3. Revenue Workers (2) ---
	{
		wc := config.GetWorkerConfig(cfg, dr.TaskType)
		handler, err := dr.NewHandler(dr.NewConfig(wc, cfg.Pricing.Revenue), pg.DB, publisher, log)
		if err != nil {
			zapLog.Fatal("failed to create distribute-revenue handler", zap.Error(err))
		}
		runner.Start(dr.TaskType, wc, handler.Handle)
	}

	{
		wc := config.GetWorkerConfig(cfg, csf.TaskType)
		handler, err := csf.NewHandler(csf.NewConfig(wc), log)
		if err != nil {
			zapLog.Fatal("failed to create calculate-sponsorship-fee handler", zap.Error(err))
		}
		runner.Start(csf.TaskType, wc, handler.Handle)
	}

	// --- 4. Communication Workers (1) ---
	{
		handler, err := sp.NewHandler(sp.HandlerOptions{
			AppConfig: cfg,
			Sender:    sender,
			Logger:    log,
		})
		if err != nil {
			zapLog.Fatal("failed to create send-proposal handler", zap.Error(err))
		}
		runner.Start(sp.TaskType, config.GetWorkerConfig(cfg, sp.TaskType), handler.Handle)
	}

	zapLog.Info("Workers registered successfully", zap.Int("count", runner.Count()))

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy", nil)
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		ready := true
		for name, check := range map[string]func(context.Context) error{
			"zeebe":    zeebe.HealthCheck,
			"postgres": pg.Ping,
			"redis":    redis.Ping,
		} {
			if err := check(checkCtx); err != nil {
				checks[name] = err.Error()
				ready = false
				continue
			}
			checks[name] = "ok"
		}

		if !ready {
			writeStatus(w, http.StatusServiceUnavailable, "not ready", checks)
			return
		}
		writeStatus(w, http.StatusOK, "ready", checks)
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runner.Stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping Health/Metrics server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down observability", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped")
}

func writeStatus(w http.ResponseWriter, code int, status string, checks map[string]string) {
	body := map[string]interface{}{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	}
	if checks != nil {
		body["checks"] = checks
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
