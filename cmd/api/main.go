package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/N05TR4/gdt-sistema/api/swagger" // swagger docs
	"github.com/N05TR4/gdt-sistema/internal/cache"
	"github.com/N05TR4/gdt-sistema/internal/config"
	"github.com/N05TR4/gdt-sistema/internal/database"
	"github.com/N05TR4/gdt-sistema/internal/events"
	"github.com/N05TR4/gdt-sistema/internal/handler"
	"github.com/N05TR4/gdt-sistema/internal/metrics"
	"github.com/N05TR4/gdt-sistema/internal/platform/clock"
	"github.com/N05TR4/gdt-sistema/internal/platform/logger"
	"github.com/N05TR4/gdt-sistema/internal/repository"
	"github.com/N05TR4/gdt-sistema/internal/service"
	"github.com/N05TR4/gdt-sistema/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title           GDT Tax Declarations API
// @version         1.0
// @description     Tax declaration lifecycle: drafting, filing with late penalties, approval and rejection.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load("configs/.env")
	if err != nil {
		slog.Error("config.load_failed", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.Log.Format, cfg.Log.Level)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server.failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up storage (Repository -> Service -> Handler)
	var (
		repo      repository.DeclarationRepository
		txManager repository.TransactionManager
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("storage.memory", "detail", "declarations are lost on restart")
		repo = repository.NewMemoryDeclarationRepository()
		txManager = repository.NewMemoryTransactionManager()
	default:
		db, err := database.NewConnection(cfg.Database.DSN(), log)
		if err != nil {
			return err
		}
		defer database.Close(db)
		log.Info("database.connected", "host", cfg.Database.Host, "name", cfg.Database.Name)
		repo = repository.NewDeclarationRepository(db)
		txManager = repository.NewTransactionManager(db)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run(ctx)

	publishers := events.Multi{wsHub}
	if len(cfg.Events.Brokers) > 0 {
		kafka, err := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		if err != nil {
			return err
		}
		defer kafka.Close()
		publishers = append(publishers, kafka)
		log.Info("events.kafka_enabled", "brokers", cfg.Events.Brokers, "topic", cfg.Events.Topic)
	}

	opts := []service.Option{service.WithMetrics(m)}
	if cfg.Cache.RedisURL != "" {
		client, err := cache.NewClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		opts = append(opts, service.WithCache(cache.NewRedisViewCache(client, cfg.Cache.TTL)))
		log.Info("cache.redis_enabled", "ttl", cfg.Cache.TTL.String())
	}

	clk := clock.Real()
	declarationService := service.NewDeclarationService(repo, txManager, publishers, clk, log, opts...)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(handler.RouterDeps{
		Declarations: declarationService,
		Hub:          wsHub,
		Metrics:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Clock:        clk,
		Log:          log,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Swagger:      true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server.listening", "addr", srv.Addr, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server.shutting_down", "timeout", cfg.Server.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server.stopped")
	return nil
}
