package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Gallery represents the galleries table - one row per on-chain gallery
type Gallery struct {
	// ID is the decimal encoding of the 32-bit gallery id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GalleryID is the numeric gallery id as emitted on chain
	GalleryID uint32 `gorm:"column:gallery_id;not null"`
	// Designer is the gallery designer's address
	Designer string `gorm:"column:designer;not null;type:text"`
	// CollectionIDs is the gallery's collection membership list (decimal
	// strings; duplicates are tolerated, appends preserve order)
	CollectionIDs datatypes.JSONSlice[string] `gorm:"column:collection_ids;type:jsonb"`
	// Collections is the back-reference list of Collection record ids
	Collections datatypes.JSONSlice[string] `gorm:"column:collections;type:jsonb"`
	// BlockNumber is the block of the event that created this record
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the timestamp of that block
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TxHash is the transaction that emitted the creating event
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Gallery model
func (Gallery) TableName() string {
	return "galleries"
}
