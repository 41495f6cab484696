package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/config"
	"github.com/Chidozie222/Hackathon-sub000/internal/delivery/http/handlers"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/kafka"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/ledger"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/metrics"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/migrate"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/postgres"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/postgres/repository"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/reasoning"
	"github.com/Chidozie222/Hackathon-sub000/internal/usecase/dispute"
	"github.com/Chidozie222/Hackathon-sub000/internal/usecase/escrow"
	orderusecase "github.com/Chidozie222/Hackathon-sub000/internal/usecase/order"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init order repo
	orderRepo := repository.NewDefaultOrderRepository(db)

	// Notification sink
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)

	// Metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Ledger node client + escrow transaction manager
	ledgerClient := ledger.NewClient(cfg.LedgerNode.URL, cfg.LedgerNode.RequestTimeout, cfg.LedgerNode.PollInterval)
	escrowManager := escrow.NewManager(
		ledgerClient,
		cfg.Signer.Address,
		cfg.LedgerNode.ConfirmWait,
		cfg.LedgerNode.PollInterval,
		orderMetrics,
	)

	// Dispute engine: reasoning service primary, deterministic rules fallback
	var reasoningClient *reasoning.Client
	disputeEngine := dispute.NewEngine(nil, cfg.ReasoningService.Timeout)
	if cfg.ReasoningService.URL != "" {
		reasoningClient = reasoning.NewClient(
			cfg.ReasoningService.URL,
			cfg.ReasoningService.APIKey,
			cfg.ReasoningService.Model,
			cfg.ReasoningService.Timeout,
		)
		disputeEngine = dispute.NewEngine(reasoningClient, cfg.ReasoningService.Timeout)
	}

	// Init order usecase
	uc := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		escrowManager,
		disputeEngine,
		pub,
		orderMetrics,
	)

	// Backfill escrow accounts for pending creations
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			<-ticker.C
			if err := uc.ReconcilePendingEscrows(context.Background()); err != nil {
				slog.Error("escrow reconciliation failed", "error", err.Error())
			}
		}
	}()

	// HTTP server
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	handlers.NewOrderHandler(uc).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("escrow service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg *config.EscrowConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
