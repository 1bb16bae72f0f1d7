package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Order represents the orders table - one row per OrderCreated event,
// enriched from contract reads at event time
type Order struct {
	// ID is the event key (txHash:logIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// OrderID is the on-chain order id (uint256 as decimal string)
	OrderID string `gorm:"column:order_id;not null;type:text;index:idx_orders_order_id"`
	// SubOrderTypes are the per-suborder type discriminators
	SubOrderTypes datatypes.JSONSlice[uint8] `gorm:"column:sub_order_types;type:jsonb"`
	// Total is the order total (uint256 as decimal string)
	Total string `gorm:"column:total;not null;type:text"`
	// Buyer is the buyer's address
	Buyer string `gorm:"column:buyer;not null;type:text"`
	// Fulfillment is the encrypted fulfillment data
	Fulfillment string `gorm:"column:fulfillment;type:text"`
	// Amounts are the per-suborder amounts (decimal strings)
	Amounts datatypes.JSONSlice[string] `gorm:"column:amounts;type:jsonb"`
	// SubTotals are the per-suborder subtotals (decimal strings)
	SubTotals datatypes.JSONSlice[string] `gorm:"column:sub_totals;type:jsonb"`
	// ParentIDs are the per-suborder parent ids (decimal strings)
	ParentIDs datatypes.JSONSlice[string] `gorm:"column:parent_ids;type:jsonb"`
	// Currencies are the per-suborder payment token addresses
	Currencies datatypes.JSONSlice[string] `gorm:"column:currencies;type:jsonb"`
	// CollectionIDs is the per-suborder collection id matrix, stored as
	// nested JSON text of decimal strings: [["1","2"],["3"]]
	CollectionIDs string `gorm:"column:collection_ids;not null;type:text"`
	// MintedTokens is the per-suborder minted token matrix, same encoding
	MintedTokens string `gorm:"column:minted_tokens;not null;type:text"`
	// BlockNumber is the block of the OrderCreated event
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the timestamp of that block
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TxHash is the transaction that emitted the event
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
