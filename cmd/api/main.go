package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/api/middleware"
	"github.com/abstrakts/storefront-core/internal/api/server"
	"github.com/abstrakts/storefront-core/internal/api/shared/executor"
	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/inventory"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/market"
	"github.com/abstrakts/storefront-core/internal/media"
	"github.com/abstrakts/storefront-core/internal/messaging"
	"github.com/abstrakts/storefront-core/internal/ownership"
	"github.com/abstrakts/storefront-core/internal/providers/atomic"
	"github.com/abstrakts/storefront-core/internal/providers/chainrpc"
	"github.com/abstrakts/storefront-core/internal/providers/jetstream"
	"github.com/abstrakts/storefront-core/internal/providers/wallet"
	"github.com/abstrakts/storefront-core/internal/ratelimit"
	"github.com/abstrakts/storefront-core/internal/registry"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "storefront-api",
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting storefront API")

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	clock := adapter.NewClock()
	cache := adapter.NewCache(cfg.Cache.SizeMB)
	httpClient := adapter.NewHTTPClient(cfg.HTTP.Timeout, adapter.WithMaxElapsedTime(cfg.HTTP.MaxRetryTime))
	// Pushes to the wallet bridge are never retried
	walletHTTPClient := adapter.NewHTTPClient(cfg.Wallet.Timeout, adapter.WithoutRetry())

	// Connect to redis for the distributed rate limiter when configured
	var redisClient adapter.RedisClient
	if cfg.RateLimiter.RedisURL != "" {
		redisClient, err = adapter.NewRedisClient(cfg.RateLimiter.RedisURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create redis client", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
	} else {
		logger.WarnCtx(ctx, "Redis not configured, rate limits are enforced per process")
	}

	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() { _ = rateLimitProxy.Close() }()

	// Resolve chain endpoints
	chains := make([]domain.ChainKey, 0, len(cfg.Chains))
	aaEndpoints := make(map[domain.ChainKey]string, len(cfg.Chains))
	rpcEndpoints := make(map[domain.ChainKey]string, len(cfg.Chains))
	for key, chain := range cfg.Chains {
		chainKey := domain.ChainKey(key)
		chains = append(chains, chainKey)
		aaEndpoints[chainKey] = chain.AAEndpoint
		rpcEndpoints[chainKey] = chain.RPCEndpoint()
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i] < chains[j] })
	logger.InfoCtx(ctx, "Configured chains", zap.Any("chains", chains))

	// Initialize providers
	atomicClient := atomic.NewClient(httpClient, rateLimitProxy, aaEndpoints, jsonAdapter, cache, cfg.Cache.CollectionTTL)
	chainRPCClient := chainrpc.NewClient(httpClient, rateLimitProxy, rpcEndpoints, jsonAdapter, cache, cfg.Cache.AccountTTL, cfg.Market.AtomicMarketContract)
	signer := wallet.NewBridgeSigner(walletHTTPClient, cfg.Wallet.BridgeURL, cfg.Wallet.APIKey, jsonAdapter)
	mediaResolver := media.NewResolver(httpClient, media.Config{
		Gateway:  cfg.Media.IPFSGateway,
		Gateways: cfg.Media.IPFSGateways,
	})

	// Load token registry
	var tokenRegistry registry.TokenRegistry
	if cfg.TokensRegistryPath != "" {
		tokenLoader := registry.NewTokenRegistryLoader(fs, jsonAdapter)
		tokenRegistry, err = tokenLoader.Load(cfg.TokensRegistryPath, cfg.Tokens)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load token registry",
				zap.Error(err),
				zap.String("path", cfg.TokensRegistryPath))
		}
		logger.InfoCtx(ctx, "Loaded token registry", zap.String("path", cfg.TokensRegistryPath))
	} else {
		tokenRegistry = registry.NewTokenRegistry(cfg.Tokens)
		logger.WarnCtx(ctx, "Token registry path not configured, using the built-in tokens")
	}

	// Showcase fan-out pool
	showcasePool := pond.NewPool(cfg.Market.MaxShowcases)
	defer showcasePool.StopAndWait()

	aggregator := inventory.NewAggregator(atomicClient, mediaResolver, showcasePool, cfg.Market.PageLimit)
	builder := market.NewBuilder(tokenRegistry, cfg.Market)
	composer := market.NewComposer(builder, signer, aggregator, clock, jcsAdapter, jsonAdapter, chains, cfg.Market)
	checker := ownership.NewChecker(atomicClient, cfg.Ownership)

	// Connect to NATS for market events when configured
	publisher := messaging.NewNopPublisher()
	if cfg.Messaging.NatsURL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.Messaging.NatsURL,
			MaxReconnects:  cfg.Messaging.MaxReconnects,
			ReconnectWait:  cfg.Messaging.ReconnectWait,
			ConnectionName: cfg.Messaging.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.Messaging.NatsURL))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, market events are not published")
	}
	defer publisher.Close()

	exec := executor.NewExecutor(aggregator, atomicClient, chainRPCClient, mediaResolver, checker, composer, publisher, clock, jsonAdapter)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Chains:         chains,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
