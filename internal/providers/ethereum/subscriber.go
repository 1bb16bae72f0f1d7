package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/messaging"
)

// Config holds the configuration for the Ethereum subscription
type Config struct {
	WebSocketURL string // WebSocket URL (e.g., wss://mainnet.infura.io/ws/v3/YOUR_PROJECT_ID)

	// Pinned contract addresses
	AutographData string
	PrintSplits   string
}

type ethSubscriber struct {
	client    adapter.EthClient
	decoder   *Decoder
	addresses []common.Address

	// timestamp cache for the last seen block; logs of one block arrive together
	lastBlock     uint64
	lastTimestamp time.Time
}

// NewSubscriber creates a new Ethereum event subscriber for both
// pinned contracts
func NewSubscriber(cfg Config, client adapter.EthClient, decoder *Decoder) messaging.Subscriber {
	return &ethSubscriber{
		client:  client,
		decoder: decoder,
		addresses: []common.Address{
			common.HexToAddress(cfg.AutographData),
			common.HexToAddress(cfg.PrintSplits),
		},
	}
}

// SubscribeEvents subscribes to logs emitted by the pinned contracts
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: s.addresses,
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from contract logs")
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from contract logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			// Reorged-out logs arrive with Removed set; skip them
			if vLog.Removed {
				continue
			}

			timestamp, err := s.blockTimestamp(ctx, vLog.BlockNumber)
			if err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error fetching block timestamp"))
				continue
			}

			event, err := s.decoder.Decode(vLog, timestamp)
			if err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error decoding log"))
				continue
			}

			if event == nil {
				continue
			}

			if err := handler(event); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"))
			}
		}
	}
}

func (s *ethSubscriber) blockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	if blockNumber == s.lastBlock && !s.lastTimestamp.IsZero() {
		return s.lastTimestamp, nil
	}

	header, err := s.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get header for block %d: %w", blockNumber, err)
	}

	s.lastBlock = blockNumber
	s.lastTimestamp = time.Unix(int64(header.Time), 0).UTC() //nolint:gosec,G115
	return s.lastTimestamp, nil
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}
