package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Autograph represents the autographs table - one row per AutographCreated
// event, enriched from contract reads at event time
type Autograph struct {
	// ID is the event key (txHash:logIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// URI is the autograph metadata URI from the event
	URI string `gorm:"column:uri;not null;type:text"`
	// Amount is the edition size from the event (uint256 as decimal string)
	Amount string `gorm:"column:amount;not null;type:text"`
	// Price is the autograph price read from the contract
	Price string `gorm:"column:price;not null;type:text"`
	// PageCount is the number of pages read from the contract
	PageCount uint32 `gorm:"column:page_count;not null"`
	// AcceptedTokens are the payment token addresses accepted for the autograph
	AcceptedTokens datatypes.JSONSlice[string] `gorm:"column:accepted_tokens;type:jsonb"`
	// ProfileID is the connected profile id (decimal string)
	ProfileID string `gorm:"column:profile_id;not null;type:text"`
	// PubID is the connected publication id (decimal string)
	PubID string `gorm:"column:pub_id;not null;type:text"`
	// Designer is the autograph designer's address
	Designer string `gorm:"column:designer;not null;type:text"`
	// MintedTokens are the minted token ids (decimal strings)
	MintedTokens datatypes.JSONSlice[string] `gorm:"column:minted_tokens;type:jsonb"`
	// Pages are the page texts fetched for indices 1..pageCount-1
	Pages datatypes.JSONSlice[string] `gorm:"column:pages;type:jsonb"`
	// BlockNumber is the block of the AutographCreated event
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the timestamp of that block
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TxHash is the transaction that emitted the event
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Autograph model
func (Autograph) TableName() string {
	return "autographs"
}
