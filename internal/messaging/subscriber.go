package messaging

import (
	"context"

	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
)

// EventHandler is called for each decoded contract event
type EventHandler func(event *domain.Event) error

// Subscriber defines the interface for subscribing to contract events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to events of both pinned contracts
	// fromBlock: starting point for subscription (0 for latest)
	// handler: callback function to process each event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
