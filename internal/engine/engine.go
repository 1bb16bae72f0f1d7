// Package engine applies normalized contract events to derived state.
// One engine instance serves both pinned contracts; events are applied
// serially in on-chain order.
package engine

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/contracts"
	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/store"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

// Engine reconciles contract events into the database. Handlers perform
// every contract read before the first state write, so a failed read
// aborts the event without leaving partial state behind.
type Engine struct {
	store     store.Store
	autograph contracts.AutographDataReader
	splits    contracts.PrintSplitsReader
	json      adapter.JSON
}

func NewEngine(
	st store.Store,
	autograph contracts.AutographDataReader,
	splits contracts.PrintSplitsReader,
	jsonAdapter adapter.JSON,
) *Engine {
	return &Engine{
		store:     st,
		autograph: autograph,
		splits:    splits,
		json:      jsonAdapter,
	}
}

// Handle applies a single event. Every successfully handled event writes
// an audit record, including events that touch no derived state. A
// returned error means nothing was recorded and the event is safe to
// redeliver.
func (e *Engine) Handle(ctx context.Context, event *domain.Event) error {
	if !event.Valid() {
		return fmt.Errorf("invalid event %s (%s)", event.Key(), event.Kind)
	}

	var err error
	switch event.Kind {
	case domain.KindGalleryCreated:
		err = handle(ctx, e, event, e.handleGalleryCreated)
	case domain.KindGalleryUpdated:
		err = handle(ctx, e, event, e.handleGalleryUpdated)
	case domain.KindGalleryDeleted:
		err = handle(ctx, e, event, e.handleGalleryDeleted)
	case domain.KindCollectionDeleted:
		err = handle(ctx, e, event, e.handleCollectionDeleted)
	case domain.KindPublicationConnected:
		err = handle(ctx, e, event, e.handlePublicationConnected)
	case domain.KindOrderCreated:
		err = handle(ctx, e, event, e.handleOrderCreated)
	case domain.KindAutographCreated:
		err = handle(ctx, e, event, e.handleAutographCreated)
	case domain.KindCurrencyAdded:
		err = handle(ctx, e, event, e.handleCurrencyAdded)
	case domain.KindOracleUpdated:
		err = handle(ctx, e, event, e.handleOracleUpdated)
	case domain.KindCollectionTokenMinted, domain.KindAutographTokensMinted,
		domain.KindCurrencyRemoved, domain.KindDesignerSplitSet,
		domain.KindFulfillerBaseSet, domain.KindFulfillerSplitSet,
		domain.KindTreasurySplitSet:
		// Flat events: audit record only, no derived state
	default:
		return fmt.Errorf("unknown event kind: %s", event.Kind)
	}
	if err != nil {
		return err
	}

	return e.recordEvent(ctx, event)
}

// handle decodes the payload and runs the kind-specific handler
func handle[T any](
	ctx context.Context,
	e *Engine,
	event *domain.Event,
	fn func(ctx context.Context, event *domain.Event, payload *T) error,
) error {
	var payload T
	if err := e.json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", event.Kind, err)
	}
	return fn(ctx, event, &payload)
}

// recordEvent appends the audit row for a handled event
func (e *Engine) recordEvent(ctx context.Context, event *domain.Event) error {
	record := &schema.EventRecord{
		ID:             event.Key(),
		Kind:           string(event.Kind),
		Payload:        datatypes.JSON(event.Payload),
		BlockNumber:    event.BlockNumber,
		LogIndex:       event.LogIndex,
		BlockTimestamp: event.BlockTimestamp,
		TxHash:         event.TxHash,
	}
	if err := e.store.SaveEventRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to record event %s: %w", event.Key(), err)
	}

	logger.InfoCtx(ctx, "Event applied",
		zap.String("kind", string(event.Kind)),
		zap.String("key", event.Key()),
		zap.Uint64("block", event.BlockNumber))
	return nil
}

// registerMetadata schedules ingestion for a collection's content hash
func (e *Engine) registerMetadata(ctx context.Context, collection *schema.Collection) error {
	if collection.MetadataHash == nil {
		return nil
	}

	created, err := e.store.RegisterMetadataJob(ctx, *collection.MetadataHash)
	if err != nil {
		return err
	}
	if created {
		logger.InfoCtx(ctx, "Metadata job registered",
			zap.String("hash", *collection.MetadataHash),
			zap.String("collection", collection.ID))
	}
	return nil
}

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal value: %q", s)
	}
	return v, nil
}

// contentHash extracts the final path segment of a metadata URI
func contentHash(uri string) string {
	parts := strings.Split(uri, "/")
	return parts[len(parts)-1]
}

func addressesToStrings(addrs []common.Address) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, addr.Hex())
	}
	return out
}

func bigIntsToStrings(values []*big.Int) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}
