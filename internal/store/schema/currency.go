package schema

import "time"

// Currency represents the currencies table - registered payment currencies
// with their wei conversion and, once an oracle has reported, their rate
type Currency struct {
	// ID is the decimal encoding of the currency contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Currency is the currency contract address
	Currency string `gorm:"column:currency;not null;type:text"`
	// Wei is the wei conversion read from the contract at registration time
	Wei string `gorm:"column:wei;not null;type:text"`
	// Rate is the latest oracle rate (nil until the first OracleUpdated
	// for a registered currency)
	Rate *string `gorm:"column:rate;type:text"`
	// BlockNumber is the block of the CurrencyAdded event
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the timestamp of that block
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TxHash is the transaction that emitted the event
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Currency model
func (Currency) TableName() string {
	return "currencies"
}
