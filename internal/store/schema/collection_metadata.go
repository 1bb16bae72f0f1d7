package schema

import (
	"time"

	"gorm.io/datatypes"
)

// CollectionMetadata represents the collection_metadata table - parsed
// off-chain metadata keyed by content hash. Only fields of the expected
// JSON type are populated; everything else stays nil.
type CollectionMetadata struct {
	// ID is the content hash the metadata was fetched by
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Image is the primary image URI
	Image *string `gorm:"column:image;type:text"`
	// Description is the collection description, truncated to 2000 characters
	Description *string `gorm:"column:description;type:text"`
	// Title is the collection title
	Title *string `gorm:"column:title;type:text"`
	// Tags is the free-form tags string
	Tags *string `gorm:"column:tags;type:text"`
	// Npcs is the free-form npcs string
	Npcs *string `gorm:"column:npcs;type:text"`
	// Locales is the free-form locales string
	Locales *string `gorm:"column:locales;type:text"`
	// Instructions is the instructions text, truncated to 2000 characters
	Instructions *string `gorm:"column:instructions;type:text"`
	// Tipo is the collection type label
	Tipo *string `gorm:"column:tipo;type:text"`
	// Gallery is the gallery label
	Gallery *string `gorm:"column:gallery;type:text"`
	// Images are the additional image URIs (non-string entries dropped)
	Images datatypes.JSONSlice[string] `gorm:"column:images;type:jsonb"`
	// Colors are the color values (non-string entries dropped)
	Colors datatypes.JSONSlice[string] `gorm:"column:colors;type:jsonb"`
	// CreatedAt is the timestamp when this record was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last re-ingested
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CollectionMetadata model
func (CollectionMetadata) TableName() string {
	return "collection_metadata"
}
