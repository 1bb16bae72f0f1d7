package schema

import "time"

// MetadataJobStatus represents the lifecycle state of a metadata job
type MetadataJobStatus string

const (
	// MetadataJobStatusPending indicates the content has not been ingested yet
	MetadataJobStatusPending MetadataJobStatus = "pending"
	// MetadataJobStatusDone indicates the content was fetched and ingested
	MetadataJobStatusDone MetadataJobStatus = "done"
)

// MetadataJob represents the metadata_jobs table - the content ingestion
// job registry. Registration is at-most-once per hash: inserting an
// existing hash is a no-op.
type MetadataJob struct {
	// Hash is the content hash to ingest (primary key)
	Hash string `gorm:"column:hash;primaryKey;type:text"`
	// Status is the job lifecycle state
	Status MetadataJobStatus `gorm:"column:status;not null;default:'pending';type:text;index:idx_metadata_jobs_status"`
	// Attempts counts ingestion attempts, successful or not
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// Digest is the SHA-256 of the canonicalized content, set on success
	Digest *string `gorm:"column:digest;type:text"`
	// CreatedAt is the timestamp when the job was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the job was last attempted
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MetadataJob model
func (MetadataJob) TableName() string {
	return "metadata_jobs"
}
