package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Collection represents the collections table - derived collection state
// enriched from contract reads. Records are addressed by collection id
// alone, so re-indexing the same id overwrites the row.
type Collection struct {
	// ID is the decimal encoding of the 256-bit collection id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// CollectionID is the numeric collection id as a decimal string
	CollectionID string `gorm:"column:collection_id;not null;type:text"`
	// GalleryID is the owning gallery's numeric id
	GalleryID uint32 `gorm:"column:gallery_id;not null;index:idx_collections_gallery_id"`
	// AcceptedTokens are the payment token addresses accepted for this collection
	AcceptedTokens datatypes.JSONSlice[string] `gorm:"column:accepted_tokens;type:jsonb"`
	// Price is the collection price (uint256 as decimal string)
	Price string `gorm:"column:price;not null;type:text"`
	// Amount is the collection's total edition size (uint256 as decimal string)
	Amount string `gorm:"column:amount;not null;type:text"`
	// Designer is the collection designer's address
	Designer string `gorm:"column:designer;not null;type:text"`
	// URI is the collection metadata URI
	URI string `gorm:"column:uri;not null;type:text"`
	// Type is the collection type discriminator
	Type uint8 `gorm:"column:type;not null"`
	// Mix is the derived availability flag (see engine for the two formulas)
	Mix bool `gorm:"column:mix;not null;default:false"`
	// MintedTokens are the minted token ids (decimal strings)
	MintedTokens datatypes.JSONSlice[string] `gorm:"column:minted_tokens;type:jsonb"`
	// PubIDs accumulates connected publication ids, parallel to ProfileIDs
	PubIDs datatypes.JSONSlice[string] `gorm:"column:pub_ids;type:jsonb"`
	// ProfileIDs accumulates connected profile ids, parallel to PubIDs
	ProfileIDs datatypes.JSONSlice[string] `gorm:"column:profile_ids;type:jsonb"`
	// MetadataHash is the content hash extracted from URI (nil when the URI
	// has no usable final path segment); references collection_metadata.id
	MetadataHash *string `gorm:"column:metadata_hash;type:text;index:idx_collections_metadata_hash"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
