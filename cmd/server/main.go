package main

import (
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/wealthflow-ledger/internal/adapter/grpc"
	"github.com/simaogato/wealthflow-ledger/internal/adapter/repository/memory"
	"github.com/simaogato/wealthflow-ledger/internal/config"
	"github.com/simaogato/wealthflow-ledger/internal/usecase/dashboard"
	"github.com/simaogato/wealthflow-ledger/internal/usecase/investment"
	"github.com/simaogato/wealthflow-ledger/internal/usecase/session"
)

func main() {
	// 1. Load configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// 2. Initialize Repositories (in-memory, one ledger per session)
	sessionRepo := memory.NewSessionRepository(cfg.MaxSessions)

	// 3. Initialize Services (Use Cases)
	sessionService := session.NewSessionService(sessionRepo)
	investmentService := investment.NewInvestmentService(sessionRepo)
	dashboardService := dashboard.NewDashboardService(sessionRepo)

	// 4. Start gRPC Server
	// Logging runs first so rejected credentials are logged too
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	grpcAdapter := grpcadapter.NewServer(sessionService, investmentService, dashboardService)
	grpcadapter.RegisterLedgerServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		slog.Error("Failed to listen", "addr", cfg.GRPCAddr, "error", err)
		os.Exit(1)
	}

	// Start server in a goroutine
	go func() {
		slog.Info("gRPC server listening", "addr", cfg.GRPCAddr, "max_sessions", cfg.MaxSessions)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("Failed to serve gRPC server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	slog.Info("Shutting down gracefully", "signal", sig.String())

	grpcServer.GracefulStop()
	slog.Info("gRPC server stopped")
}
