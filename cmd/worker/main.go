package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/app"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/config"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/database"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/events"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/logger"
	"github.com/rasmoura/GestaoPedidosTmb/pkg/telemetry"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/application/consumer"
	domainevents "github.com/rasmoura/GestaoPedidosTmb/services/order/domain/events"
	"github.com/rasmoura/GestaoPedidosTmb/services/order/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	if err := registerSubscribers(ctx, appConfig, cfg); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// Cancelling the context interrupts any in-flight fulfillment delay; the
	// affected message is Nacked and redelivered. EventBus.Close() (via defer)
	// then waits up to 30s for handlers to finish.
	cancel()
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application, cfg *config.Config) error {
	repo := postgres.NewOrderRepository(a.Db)
	orderConsumer := consumer.New(repo, a.Logger, cfg.ProcessingDelay)

	errCh, err := a.EventBus.Subscribe(ctx, domainevents.TopicOrderCreated, orderConsumer.Handle)
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	// Every abandoned message surfaces here once; the channel redelivers it.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "message abandoned",
				"topic", domainevents.TopicOrderCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered",
		"topics", []string{domainevents.TopicOrderCreated},
		"processing_delay", cfg.ProcessingDelay,
	)
	return nil
}
