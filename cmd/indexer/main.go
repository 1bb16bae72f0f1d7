package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/bridge"
	"github.com/autograph-quarterly/autograph-indexer/internal/config"
	"github.com/autograph-quarterly/autograph-indexer/internal/contracts"
	"github.com/autograph-quarterly/autograph-indexer/internal/engine"
	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/metadata"
	"github.com/autograph-quarterly/autograph-indexer/internal/store"
	"github.com/autograph-quarterly/autograph-indexer/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIndexerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "indexer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Indexer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime,
	); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	natsJS := adapter.NewNatsJetStream()
	httpClient := adapter.NewHTTPClient(cfg.Metadata.HTTPTimeout)

	// Initialize ethereum client for contract reads
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()

	// Initialize contract readers
	autographReader, err := contracts.NewAutographDataReader(cfg.Contracts.AutographData, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create autograph data reader", zap.Error(err), zap.String("address", cfg.Contracts.AutographData))
	}
	splitsReader, err := contracts.NewPrintSplitsReader(cfg.Contracts.PrintSplits, ethClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create print splits reader", zap.Error(err), zap.String("address", cfg.Contracts.PrintSplits))
	}

	// Initialize reconciliation engine
	eventEngine := engine.NewEngine(dataStore, autographReader, splitsReader, jsonAdapter)

	// Initialize event bridge
	eventBridge, err := bridge.NewBridge(bridge.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		AckWaitTimeout: cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
	}, natsJS, eventEngine, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create event bridge", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer eventBridge.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Initialize metadata worker
	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: cfg.Metadata.URI.IPFSGateways,
	})
	metadataWorker := metadata.NewWorker(
		dataStore,
		uriResolver,
		httpClient,
		metadata.NewParser(jsonAdapter),
		jcsAdapter,
		clockAdapter,
		cfg.Metadata,
	)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for component errors
	errCh := make(chan error, 2)

	// Start the bridge
	go func() {
		if err := eventBridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("bridge: %w", err)
		}
	}()

	// Start the metadata worker
	go func() {
		if err := metadataWorker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("metadata worker: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "indexer"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Indexer stopped")
}
