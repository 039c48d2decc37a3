package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"github.com/vwency/policy-chat-gateway/internal/handler"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chat HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	gw, err := newGateway()
	if err != nil {
		return err
	}
	defer gw.close()

	chat := handler.NewChatHandler(gw.resolver, gw.queries, logger)

	server := &fasthttp.Server{
		Handler:      chat.Router(),
		Name:         cfg.App.ServiceName,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
		IdleTimeout:  cfg.GetIdleTimeout(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%s", cfg.App.Port)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Gateway starting",
			zap.String("service", cfg.App.ServiceName),
			zap.String("addr", addr),
			zap.String("backend", cfg.Backend.QueryURL),
			logDirectoryTarget())
		if err := server.ListenAndServe(addr); err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		return server.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
