package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/knitworks/pattern-analyzer/constants"
	patternsv1 "github.com/knitworks/pattern-analyzer/gen/patterns/v1"
	"github.com/knitworks/pattern-analyzer/internal/analysis"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/convert"
	"github.com/knitworks/pattern-analyzer/internal/ledger"
	"github.com/knitworks/pattern-analyzer/internal/repository"
	"github.com/knitworks/pattern-analyzer/internal/server"
	"github.com/knitworks/pattern-analyzer/internal/stats"
	"github.com/knitworks/pattern-analyzer/internal/vision"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.Migrate(ctx, entc, logger); err != nil {
		logger.Error("migrating schema", "error", err)
		os.Exit(1)
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check", "error", err)
		os.Exit(1)
	}

	local, err := ledger.OpenLocal(cfg.Ledger.LocalDBPath, logger)
	if err != nil {
		logger.Error("opening local ledger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = local.Close() }()

	usageRepo := repository.NewUsageRepository(entc, logger)
	attemptsRepo := repository.NewAttemptRepository(entc, logger)
	creditLedger := ledger.New(usageRepo, local, logger)

	visionClient := vision.NewClient(cfg.Vision, logger)
	converter := convert.NewConverter(cfg.Converter, logger)
	orchestrator := analysis.NewOrchestrator(visionClient, creditLedger, converter, attemptsRepo, logger)
	statsService := stats.NewService(attemptsRepo, creditLedger, logger)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(server.UnaryRequestID(logger)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewAnalysisService(orchestrator, creditLedger, statsService, visionClient, logger)
	patternsv1.RegisterAnalysisServiceServer(grpcServer, svc)

	// Trim the attempt audit outside the retention window once a day.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().UTC().Add(-constants.AttemptRetention)
				if _, err := attemptsRepo.PurgeOlderThan(ctx, cutoff); err != nil {
					logger.Warn("attempt purge failed", "error", err)
				}
			}
		}
	}()

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
