package store

import (
	"context"

	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetGallery retrieves a gallery by its record id, nil when absent
	GetGallery(ctx context.Context, id string) (*schema.Gallery, error)
	// SaveGallery creates or updates a gallery record
	SaveGallery(ctx context.Context, gallery *schema.Gallery) error
	// DeleteGallery removes a gallery record
	DeleteGallery(ctx context.Context, id string) error

	// GetCollection retrieves a collection by its record id, nil when absent
	GetCollection(ctx context.Context, id string) (*schema.Collection, error)
	// SaveCollection creates or updates a collection record
	SaveCollection(ctx context.Context, collection *schema.Collection) error
	// DeleteCollection removes a collection record
	DeleteCollection(ctx context.Context, id string) error

	// SaveOrder creates or updates an order record
	SaveOrder(ctx context.Context, order *schema.Order) error

	// SaveAutograph creates or updates an autograph record
	SaveAutograph(ctx context.Context, autograph *schema.Autograph) error

	// GetCurrency retrieves a currency by its record id, nil when absent
	GetCurrency(ctx context.Context, id string) (*schema.Currency, error)
	// SaveCurrency creates or updates a currency record
	SaveCurrency(ctx context.Context, currency *schema.Currency) error

	// SaveEventRecord appends an audit record for a handled event
	SaveEventRecord(ctx context.Context, record *schema.EventRecord) error

	// GetCollectionMetadata retrieves parsed metadata by content hash, nil when absent
	GetCollectionMetadata(ctx context.Context, hash string) (*schema.CollectionMetadata, error)
	// SaveCollectionMetadata creates or updates a parsed metadata record
	SaveCollectionMetadata(ctx context.Context, metadata *schema.CollectionMetadata) error

	// RegisterMetadataJob records a pending ingestion job for a content
	// hash. Registration is at-most-once: it reports whether a new job
	// was created.
	RegisterMetadataJob(ctx context.Context, hash string) (bool, error)
	// ListPendingMetadataJobs returns up to limit pending jobs, oldest first
	ListPendingMetadataJobs(ctx context.Context, limit int) ([]schema.MetadataJob, error)
	// CompleteMetadataJob marks a job done and records the content digest
	CompleteMetadataJob(ctx context.Context, hash string, digest string) error
	// TouchMetadataJob bumps the attempt counter of a still-pending job
	TouchMetadataJob(ctx context.Context, hash string) error

	// GetBlockCursor retrieves the last processed block number for a contract
	GetBlockCursor(ctx context.Context, contract string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a contract
	SetBlockCursor(ctx context.Context, contract string, blockNumber uint64) error
}
