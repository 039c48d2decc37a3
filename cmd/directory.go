package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vwency/policy-chat-gateway/internal/services"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Run the gRPC user directory with the sample employee roster",
	RunE:  runDirectory,
}

func runDirectory(cmd *cobra.Command, args []string) error {
	lis, err := net.Listen("tcp", cfg.Directory.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Directory.Listen, err)
	}

	srv := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor))
	services.RegisterUserDirectoryServer(srv, services.NewUserServiceServer(services.SeedUsers))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("Stopping user directory")
		srv.GracefulStop()
	}()

	logger.Info("User directory starting",
		zap.String("addr", lis.Addr().String()),
		zap.Int("users", len(services.SeedUsers)))

	if err := srv.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}
	return nil
}

func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)
	logger.Debug("Directory call",
		zap.String("method", info.FullMethod),
		zap.String("code", status.Code(err).String()),
		zap.Duration("elapsed", time.Since(start)))
	return resp, err
}
