package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Contract identifies which pinned contract emitted an event
type Contract string

const (
	ContractAutographData Contract = "autograph_data"
	ContractPrintSplits   Contract = "print_splits"
)

// EventKind represents the type of contract event
type EventKind string

const (
	// AutographData events
	KindAutographCreated      EventKind = "autograph_created"
	KindAutographTokensMinted EventKind = "autograph_tokens_minted"
	KindCollectionDeleted     EventKind = "collection_deleted"
	KindCollectionTokenMinted EventKind = "collection_token_minted"
	KindGalleryCreated        EventKind = "gallery_created"
	KindGalleryDeleted        EventKind = "gallery_deleted"
	KindGalleryUpdated        EventKind = "gallery_updated"
	KindOrderCreated          EventKind = "order_created"
	KindPublicationConnected  EventKind = "publication_connected"

	// PrintSplits events
	KindCurrencyAdded     EventKind = "currency_added"
	KindCurrencyRemoved   EventKind = "currency_removed"
	KindDesignerSplitSet  EventKind = "designer_split_set"
	KindFulfillerBaseSet  EventKind = "fulfiller_base_set"
	KindFulfillerSplitSet EventKind = "fulfiller_split_set"
	KindOracleUpdated     EventKind = "oracle_updated"
	KindTreasurySplitSet  EventKind = "treasury_split_set"
)

// IsValidKind checks if an event kind is one of the known kinds
func IsValidKind(kind EventKind) bool {
	switch kind {
	case KindAutographCreated, KindAutographTokensMinted,
		KindCollectionDeleted, KindCollectionTokenMinted,
		KindGalleryCreated, KindGalleryDeleted, KindGalleryUpdated,
		KindOrderCreated, KindPublicationConnected,
		KindCurrencyAdded, KindCurrencyRemoved,
		KindDesignerSplitSet, KindFulfillerBaseSet, KindFulfillerSplitSet,
		KindOracleUpdated, KindTreasurySplitSet:
		return true
	}
	return false
}

// Contract returns the contract an event kind belongs to
func (k EventKind) Contract() Contract {
	switch k {
	case KindCurrencyAdded, KindCurrencyRemoved,
		KindDesignerSplitSet, KindFulfillerBaseSet, KindFulfillerSplitSet,
		KindOracleUpdated, KindTreasurySplitSet:
		return ContractPrintSplits
	default:
		return ContractAutographData
	}
}

// Event is a normalized contract event: the envelope published to NATS.
// Payload holds the kind-specific parameters as JSON.
type Event struct {
	Kind           EventKind       `json:"kind"`
	TxHash         string          `json:"tx_hash"`
	LogIndex       uint            `json:"log_index"`
	BlockNumber    uint64          `json:"block_number"`
	BlockTimestamp time.Time       `json:"block_timestamp"`
	Payload        json.RawMessage `json:"payload"`
}

// Key returns the unique event key derived from the transaction hash and
// log index. Events are totally ordered by (block number, log index) and
// the key never collides across distinct events.
func (e *Event) Key() string {
	return fmt.Sprintf("%s:%d", e.TxHash, e.LogIndex)
}

// Valid checks the envelope carries everything a handler needs
func (e *Event) Valid() bool {
	if !IsValidKind(e.Kind) {
		return false
	}
	if e.TxHash == "" || e.BlockNumber == 0 {
		return false
	}
	return len(e.Payload) > 0
}

// GalleryCreatedPayload carries the GalleryCreated event parameters.
// Large numerics travel as decimal strings; gallery ids fit in 32 bits.
type GalleryCreatedPayload struct {
	CollectionIDs []string `json:"collection_ids"`
	Designer      string   `json:"designer"`
	GalleryID     uint32   `json:"gallery_id"`
}

// GalleryUpdatedPayload carries the GalleryUpdated event parameters
type GalleryUpdatedPayload struct {
	CollectionIDs []string `json:"collection_ids"`
	Designer      string   `json:"designer"`
	GalleryID     uint32   `json:"gallery_id"`
}

// GalleryDeletedPayload carries the GalleryDeleted event parameters
type GalleryDeletedPayload struct {
	Designer  string `json:"designer"`
	GalleryID uint32 `json:"gallery_id"`
}

// CollectionDeletedPayload carries the CollectionDeleted event parameters
type CollectionDeletedPayload struct {
	CollectionID string `json:"collection_id"`
	GalleryID    uint32 `json:"gallery_id"`
}

// CollectionTokenMintedPayload carries the CollectionTokenMinted event parameters
type CollectionTokenMintedPayload struct {
	TokenIDs      []string `json:"token_ids"`
	CollectionIDs []string `json:"collection_ids"`
	GalleryIDs    []uint32 `json:"gallery_ids"`
}

// AutographCreatedPayload carries the AutographCreated event parameters
type AutographCreatedPayload struct {
	URI    string `json:"uri"`
	Amount string `json:"amount"`
}

// AutographTokensMintedPayload carries the AutographTokensMinted event parameters
type AutographTokensMintedPayload struct {
	Amount string `json:"amount"`
}

// OrderCreatedPayload carries the OrderCreated event parameters
type OrderCreatedPayload struct {
	SubOrderTypes []uint8 `json:"sub_order_types"`
	Total         string  `json:"total"`
	OrderID       string  `json:"order_id"`
}

// PublicationConnectedPayload carries the PublicationConnected event parameters
type PublicationConnectedPayload struct {
	PubID        string `json:"pub_id"`
	ProfileID    string `json:"profile_id"`
	CollectionID string `json:"collection_id"`
	GalleryID    uint32 `json:"gallery_id"`
}

// CurrencyAddedPayload carries the CurrencyAdded event parameters
type CurrencyAddedPayload struct {
	Currency string `json:"currency"`
}

// CurrencyRemovedPayload carries the CurrencyRemoved event parameters
type CurrencyRemovedPayload struct {
	Currency string `json:"currency"`
}

// DesignerSplitSetPayload carries the DesignerSplitSet event parameters
type DesignerSplitSetPayload struct {
	Designer  string `json:"designer"`
	PrintType uint8  `json:"print_type"`
	Split     string `json:"split"`
}

// FulfillerBaseSetPayload carries the FulfillerBaseSet event parameters
type FulfillerBaseSetPayload struct {
	Fulfiller string `json:"fulfiller"`
	PrintType uint8  `json:"print_type"`
	Split     string `json:"split"`
}

// FulfillerSplitSetPayload carries the FulfillerSplitSet event parameters
type FulfillerSplitSetPayload struct {
	Fulfiller string `json:"fulfiller"`
	PrintType uint8  `json:"print_type"`
	Split     string `json:"split"`
}

// OracleUpdatedPayload carries the OracleUpdated event parameters
type OracleUpdatedPayload struct {
	Currency string `json:"currency"`
	Rate     string `json:"rate"`
}

// TreasurySplitSetPayload carries the TreasurySplitSet event parameters
type TreasurySplitSetPayload struct {
	Treasury  string `json:"treasury"`
	PrintType uint8  `json:"print_type"`
	Split     string `json:"split"`
}
