package main

import (
	"fmt"

	"github.com/valyala/fasthttp"
	"github.com/vwency/policy-chat-gateway/internal/access"
	"github.com/vwency/policy-chat-gateway/internal/services"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type gateway struct {
	resolver *access.Resolver
	queries  *services.QueryServiceClient
	close    func()
}

// newGateway connects to the user directory (when configured) and the query
// backend. Without a directory address every caller resolves from the
// fallback table.
func newGateway() (*gateway, error) {
	var users services.UserService
	closeFn := func() {}

	if cfg.Directory.Address != "" {
		conn, err := grpc.NewClient(
			cfg.Directory.Address,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to user directory: %w", err)
		}
		users = services.NewUserServiceClient(conn, cfg.GetDirectoryLookupTimeout())
		closeFn = func() { _ = conn.Close() }
	} else {
		logger.Warn("No user directory configured, resolving users from the fallback table")
	}

	queries := services.NewQueryServiceClient(
		&fasthttp.Client{Name: cfg.App.ServiceName},
		cfg.Backend.QueryURL,
		logger,
	)

	return &gateway{
		resolver: access.NewResolver(users, logger),
		queries:  queries,
		close:    closeFn,
	}, nil
}

func logDirectoryTarget() zap.Field {
	if cfg.Directory.Address == "" {
		return zap.String("directory", "fallback-table")
	}
	return zap.String("directory", cfg.Directory.Address)
}
