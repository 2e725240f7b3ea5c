package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shelf_life/inventory/internal/auth"
	"shelf_life/inventory/internal/handler"
	"shelf_life/inventory/internal/mq"
	"shelf_life/inventory/internal/nightly"
	"shelf_life/inventory/internal/store"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC APIs and the nightly aging job.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := auth.InitJWTKey(cfg.JWTSecret); err != nil {
		return fmt.Errorf("JWT_SECRET: %w", err)
	}

	// 2. Database connection
	db, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := store.Migrate(ctx, db, cfg.DatabaseDriver); err != nil {
		return err
	}
	stockStore := store.NewStore(db, cfg.DatabaseDriver)
	fmt.Printf("✅ Connected to Inventory Database (%s)\n", cfg.DatabaseDriver)

	created, err := bootstrapStaff(ctx, stockStore, cfg)
	if err != nil {
		return fmt.Errorf("failed to bootstrap staff: %w", err)
	}
	if created {
		fmt.Printf("✅ Created staff account %s\n", cfg.StaffBootstrapUsername)
	}

	// 3. Redis ledger
	ledger := store.NewMemoryStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer ledger.Close()
	if err := ledger.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	fmt.Println("✅ Connected to Redis ledger")

	// 4. ZeroMQ publisher
	publisher, err := mq.NewPublisher(cfg.ZMQPort)
	if err != nil {
		return fmt.Errorf("failed to start ZMQ publisher: %w", err)
	}
	defer publisher.Close()
	fmt.Printf("✅ ZMQ Publisher active on port %s\n", cfg.ZMQPort)

	// 5. Nightly aging
	runner := nightly.NewRunner(stockStore, ledger, publisher)
	go runner.Start(ctx, cfg.AgingInterval)

	// 6. gRPC server
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}
	grpcServer := handler.NewGRPCServer(handler.NewAgingService(stockStore, runner))

	// 7. HTTP server
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewRouter(stockStore, stockStore, ledger, runner),
	}

	errc := make(chan error, 2)
	go func() {
		fmt.Printf("🚀 Aging gRPC service running on %s\n", cfg.GRPCAddr)
		errc <- grpcServer.Serve(lis)
	}()
	go func() {
		fmt.Printf("🚀 Inventory HTTP API running on %s\n", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	grpcServer.GracefulStop()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}
	return err
}
