package main

import (
	"context"
	"errors"
	"fmt"
	"hotelpro-backend/config"
	"hotelpro-backend/controllers"
	"hotelpro-backend/metrics"
	"hotelpro-backend/routes"
	"hotelpro-backend/services"
	"hotelpro-backend/store"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	os.Exit(start())
}

// start returns the process exit code so deferred cleanup, the logger
// flush included, runs before the process exits.
func start() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	logger, err := config.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Printf("logger: %v", err)
		return 1
	}
	defer logger.Sync()

	return exitCode(logger, run(cfg, logger))
}

func exitCode(logger *zap.Logger, err error) int {
	if err == nil {
		return 0
	}
	logger.Error("server stopped", zap.Error(err))
	return 1
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []store.Option{
		store.WithLogger(logger),
		store.WithObserver(metrics.NewRecorder(registry)),
	}
	if cfg.DatabaseURL != "" {
		db, err := config.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		persister := store.NewGormPersister(db)
		if err := persister.Migrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		opts = append(opts, store.WithPersister(persister))
	} else {
		logger.Warn("DB_URL not set, state is kept in memory only")
	}

	hotel := store.New(opts...)
	if err := hotel.Load(ctx); err != nil {
		return err
	}
	if cfg.SeedData && hotel.NeedsSeed() {
		if err := hotel.InitializeData(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("sample data loaded")
	}

	var notifier services.Notifier = services.NewLogNotifier(logger)
	if cfg.Twilio.Enabled() {
		notifier = services.NewTwilioNotifier(cfg.Twilio, logger)
	}
	scheduler := services.NewEventScheduler(hotel, notifier, logger)
	if err := scheduler.Start(cfg.StatusSweepSpec, cfg.ReminderSpec); err != nil {
		return err
	}
	defer scheduler.Stop()

	auth, err := controllers.NewAuth(cfg)
	if err != nil {
		return err
	}
	r := routes.SetupRouter(cfg, controllers.NewHandler(hotel, auth, logger), registry, logger)
	printRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
