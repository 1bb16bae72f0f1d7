package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetGallery retrieves a gallery by its record id, nil when absent
func (s *pgStore) GetGallery(ctx context.Context, id string) (*schema.Gallery, error) {
	var gallery schema.Gallery
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&gallery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	return &gallery, nil
}

// SaveGallery creates or updates a gallery record
func (s *pgStore) SaveGallery(ctx context.Context, gallery *schema.Gallery) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(gallery).Error
	if err != nil {
		return fmt.Errorf("failed to save gallery: %w", err)
	}
	return nil
}

// DeleteGallery removes a gallery record
func (s *pgStore) DeleteGallery(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Gallery{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete gallery: %w", err)
	}
	return nil
}

// GetCollection retrieves a collection by its record id, nil when absent
func (s *pgStore) GetCollection(ctx context.Context, id string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// SaveCollection creates or updates a collection record
func (s *pgStore) SaveCollection(ctx context.Context, collection *schema.Collection) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(collection).Error
	if err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

// DeleteCollection removes a collection record
func (s *pgStore) DeleteCollection(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Collection{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// SaveOrder creates or updates an order record
func (s *pgStore) SaveOrder(ctx context.Context, order *schema.Order) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(order).Error
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// SaveAutograph creates or updates an autograph record
func (s *pgStore) SaveAutograph(ctx context.Context, autograph *schema.Autograph) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(autograph).Error
	if err != nil {
		return fmt.Errorf("failed to save autograph: %w", err)
	}
	return nil
}

// GetCurrency retrieves a currency by its record id, nil when absent
func (s *pgStore) GetCurrency(ctx context.Context, id string) (*schema.Currency, error) {
	var currency schema.Currency
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&currency).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return &currency, nil
}

// SaveCurrency creates or updates a currency record
func (s *pgStore) SaveCurrency(ctx context.Context, currency *schema.Currency) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(currency).Error
	if err != nil {
		return fmt.Errorf("failed to save currency: %w", err)
	}
	return nil
}

// SaveEventRecord appends an audit record for a handled event.
// Replays of the same event key are skipped so the audit log stays
// stable under redelivery.
func (s *pgStore) SaveEventRecord(ctx context.Context, record *schema.EventRecord) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to save event record: %w", err)
	}
	return nil
}

// GetCollectionMetadata retrieves parsed metadata by content hash, nil when absent
func (s *pgStore) GetCollectionMetadata(ctx context.Context, hash string) (*schema.CollectionMetadata, error) {
	var metadata schema.CollectionMetadata
	err := s.db.WithContext(ctx).Where("id = ?", hash).First(&metadata).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection metadata: %w", err)
	}
	return &metadata, nil
}

// SaveCollectionMetadata creates or updates a parsed metadata record
func (s *pgStore) SaveCollectionMetadata(ctx context.Context, metadata *schema.CollectionMetadata) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(metadata).Error
	if err != nil {
		return fmt.Errorf("failed to save collection metadata: %w", err)
	}
	return nil
}

// RegisterMetadataJob records a pending ingestion job for a content hash.
// Uses ON CONFLICT DO NOTHING so registering an already-known hash is a
// no-op, which makes scheduling at-most-once per hash.
func (s *pgStore) RegisterMetadataJob(ctx context.Context, hash string) (bool, error) {
	job := schema.MetadataJob{
		Hash:   hash,
		Status: schema.MetadataJobStatusPending,
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoNothing: true,
	}).Create(&job)
	if result.Error != nil {
		return false, fmt.Errorf("failed to register metadata job: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListPendingMetadataJobs returns up to limit pending jobs, oldest first
func (s *pgStore) ListPendingMetadataJobs(ctx context.Context, limit int) ([]schema.MetadataJob, error) {
	var jobs []schema.MetadataJob
	err := s.db.WithContext(ctx).
		Where("status = ?", schema.MetadataJobStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending metadata jobs: %w", err)
	}
	return jobs, nil
}

// CompleteMetadataJob marks a job done and records the content digest
func (s *pgStore) CompleteMetadataJob(ctx context.Context, hash string, digest string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.MetadataJob{}).
		Where("hash = ?", hash).
		Updates(map[string]interface{}{
			"status":   schema.MetadataJobStatusDone,
			"digest":   digest,
			"attempts": gorm.Expr("attempts + 1"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to complete metadata job: %w", err)
	}
	return nil
}

// TouchMetadataJob bumps the attempt counter of a still-pending job
func (s *pgStore) TouchMetadataJob(ctx context.Context, hash string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.MetadataJob{}).
		Where("hash = ? AND status = ?", hash, schema.MetadataJobStatusPending).
		Update("attempts", gorm.Expr("attempts + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to touch metadata job: %w", err)
	}
	return nil
}

// GetBlockCursor retrieves the last processed block number for a contract
func (s *pgStore) GetBlockCursor(ctx context.Context, contract string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", contract)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a contract
func (s *pgStore) SetBlockCursor(ctx context.Context, contract string, blockNumber uint64) error {
	key := fmt.Sprintf("block_cursor:%s", contract)
	value := strconv.FormatUint(blockNumber, 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}
