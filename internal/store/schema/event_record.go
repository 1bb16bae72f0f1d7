package schema

import (
	"time"

	"gorm.io/datatypes"
)

// EventRecord represents the event_records table - the append-only audit
// log. Every handled event writes one row regardless of whether it
// changed any derived state.
type EventRecord struct {
	// ID is the event key (txHash:logIndex), unique per event
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Kind is the event kind discriminator
	Kind string `gorm:"column:kind;not null;type:text;index:idx_event_records_kind"`
	// Payload is the decoded event parameters as JSON
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// BlockNumber is the block the event was emitted in
	BlockNumber uint64 `gorm:"column:block_number;not null;index:idx_event_records_block_number"`
	// LogIndex is the event's log index within the block
	LogIndex uint `gorm:"column:log_index;not null"`
	// BlockTimestamp is the timestamp of the emitting block
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TxHash is the transaction that emitted the event
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the EventRecord model
func (EventRecord) TableName() string {
	return "event_records"
}
