// Package ethereum subscribes to the pinned contracts' logs and decodes
// them into normalized events.
package ethereum

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
)

// eventsABI declares every event of both contracts. All parameters are
// non-indexed, so the full payload lives in the log data.
const eventsABI = `[
	{"anonymous":false,"inputs":[{"indexed":false,"name":"uri","type":"string"},{"indexed":false,"name":"amount","type":"uint256"}],"name":"AutographCreated","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"amount","type":"uint256"}],"name":"AutographTokensMinted","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"collectionId","type":"uint256"},{"indexed":false,"name":"galleryId","type":"uint256"}],"name":"CollectionDeleted","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"tokenIds","type":"uint256[]"},{"indexed":false,"name":"collectionIds","type":"uint256[]"},{"indexed":false,"name":"galleryIds","type":"uint32[]"}],"name":"CollectionTokenMinted","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"collectionIds","type":"uint256[]"},{"indexed":false,"name":"designer","type":"address"},{"indexed":false,"name":"galleryId","type":"uint256"}],"name":"GalleryCreated","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"designer","type":"address"},{"indexed":false,"name":"galleryId","type":"uint256"}],"name":"GalleryDeleted","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"collectionIds","type":"uint256[]"},{"indexed":false,"name":"designer","type":"address"},{"indexed":false,"name":"galleryId","type":"uint256"}],"name":"GalleryUpdated","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"subOrderTypes","type":"uint8[]"},{"indexed":false,"name":"total","type":"uint256"},{"indexed":false,"name":"orderId","type":"uint256"}],"name":"OrderCreated","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"pubId","type":"uint256"},{"indexed":false,"name":"profileId","type":"uint256"},{"indexed":false,"name":"collectionId","type":"uint256"},{"indexed":false,"name":"galleryId","type":"uint256"}],"name":"PublicationConnected","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"currency","type":"address"}],"name":"CurrencyAdded","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"currency","type":"address"}],"name":"CurrencyRemoved","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"designer","type":"address"},{"indexed":false,"name":"printType","type":"uint8"},{"indexed":false,"name":"split","type":"uint256"}],"name":"DesignerSplitSet","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"fulfiller","type":"address"},{"indexed":false,"name":"printType","type":"uint8"},{"indexed":false,"name":"split","type":"uint256"}],"name":"FulfillerBaseSet","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"fulfiller","type":"address"},{"indexed":false,"name":"printType","type":"uint8"},{"indexed":false,"name":"split","type":"uint256"}],"name":"FulfillerSplitSet","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"currency","type":"address"},{"indexed":false,"name":"rate","type":"uint256"}],"name":"OracleUpdated","type":"event"},
	{"anonymous":false,"inputs":[{"indexed":false,"name":"treasury","type":"address"},{"indexed":false,"name":"printType","type":"uint8"},{"indexed":false,"name":"split","type":"uint256"}],"name":"TreasurySplitSet","type":"event"}
]`

// eventKinds maps ABI event names to normalized kinds
var eventKinds = map[string]domain.EventKind{
	"AutographCreated":      domain.KindAutographCreated,
	"AutographTokensMinted": domain.KindAutographTokensMinted,
	"CollectionDeleted":     domain.KindCollectionDeleted,
	"CollectionTokenMinted": domain.KindCollectionTokenMinted,
	"GalleryCreated":        domain.KindGalleryCreated,
	"GalleryDeleted":        domain.KindGalleryDeleted,
	"GalleryUpdated":        domain.KindGalleryUpdated,
	"OrderCreated":          domain.KindOrderCreated,
	"PublicationConnected":  domain.KindPublicationConnected,
	"CurrencyAdded":         domain.KindCurrencyAdded,
	"CurrencyRemoved":       domain.KindCurrencyRemoved,
	"DesignerSplitSet":      domain.KindDesignerSplitSet,
	"FulfillerBaseSet":      domain.KindFulfillerBaseSet,
	"FulfillerSplitSet":     domain.KindFulfillerSplitSet,
	"OracleUpdated":         domain.KindOracleUpdated,
	"TreasurySplitSet":      domain.KindTreasurySplitSet,
}

// Decoder translates contract logs into normalized events
type Decoder struct {
	abi  abi.ABI
	json adapter.JSON
}

func NewDecoder(jsonAdapter adapter.JSON) (*Decoder, error) {
	parsed, err := abi.JSON(strings.NewReader(eventsABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse events ABI: %w", err)
	}
	return &Decoder{abi: parsed, json: jsonAdapter}, nil
}

// Decode translates one log into a normalized event. Returns (nil, nil)
// for logs whose topic is not one of the known events.
func (d *Decoder) Decode(log types.Log, blockTimestamp time.Time) (*domain.Event, error) {
	if len(log.Topics) == 0 {
		return nil, nil
	}

	event, err := d.abi.EventByID(log.Topics[0])
	if err != nil {
		// Not one of ours
		return nil, nil
	}

	values := map[string]interface{}{}
	if err := event.Inputs.UnpackIntoMap(values, log.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack %s log: %w", event.Name, err)
	}

	payload, err := buildPayload(event.Name, values)
	if err != nil {
		return nil, err
	}

	raw, err := d.json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event.Name, err)
	}

	return &domain.Event{
		Kind:           eventKinds[event.Name],
		TxHash:         log.TxHash.Hex(),
		LogIndex:       log.Index,
		BlockNumber:    log.BlockNumber,
		BlockTimestamp: blockTimestamp,
		Payload:        raw,
	}, nil
}

// buildPayload converts unpacked ABI values into the kind-specific
// payload struct. Large numerics become decimal strings.
func buildPayload(name string, values map[string]interface{}) (interface{}, error) {
	switch name {
	case "AutographCreated":
		return domain.AutographCreatedPayload{
			URI:    asString(values["uri"]),
			Amount: asDecimal(values["amount"]),
		}, nil
	case "AutographTokensMinted":
		return domain.AutographTokensMintedPayload{
			Amount: asDecimal(values["amount"]),
		}, nil
	case "CollectionDeleted":
		return domain.CollectionDeletedPayload{
			CollectionID: asDecimal(values["collectionId"]),
			GalleryID:    asGalleryID(values["galleryId"]),
		}, nil
	case "CollectionTokenMinted":
		return domain.CollectionTokenMintedPayload{
			TokenIDs:      asDecimals(values["tokenIds"]),
			CollectionIDs: asDecimals(values["collectionIds"]),
			GalleryIDs:    asUint32s(values["galleryIds"]),
		}, nil
	case "GalleryCreated":
		return domain.GalleryCreatedPayload{
			CollectionIDs: asDecimals(values["collectionIds"]),
			Designer:      asAddress(values["designer"]),
			GalleryID:     asGalleryID(values["galleryId"]),
		}, nil
	case "GalleryDeleted":
		return domain.GalleryDeletedPayload{
			Designer:  asAddress(values["designer"]),
			GalleryID: asGalleryID(values["galleryId"]),
		}, nil
	case "GalleryUpdated":
		return domain.GalleryUpdatedPayload{
			CollectionIDs: asDecimals(values["collectionIds"]),
			Designer:      asAddress(values["designer"]),
			GalleryID:     asGalleryID(values["galleryId"]),
		}, nil
	case "OrderCreated":
		return domain.OrderCreatedPayload{
			SubOrderTypes: asUint8s(values["subOrderTypes"]),
			Total:         asDecimal(values["total"]),
			OrderID:       asDecimal(values["orderId"]),
		}, nil
	case "PublicationConnected":
		return domain.PublicationConnectedPayload{
			PubID:        asDecimal(values["pubId"]),
			ProfileID:    asDecimal(values["profileId"]),
			CollectionID: asDecimal(values["collectionId"]),
			GalleryID:    asGalleryID(values["galleryId"]),
		}, nil
	case "CurrencyAdded":
		return domain.CurrencyAddedPayload{
			Currency: asAddress(values["currency"]),
		}, nil
	case "CurrencyRemoved":
		return domain.CurrencyRemovedPayload{
			Currency: asAddress(values["currency"]),
		}, nil
	case "DesignerSplitSet":
		return domain.DesignerSplitSetPayload{
			Designer:  asAddress(values["designer"]),
			PrintType: asUint8(values["printType"]),
			Split:     asDecimal(values["split"]),
		}, nil
	case "FulfillerBaseSet":
		return domain.FulfillerBaseSetPayload{
			Fulfiller: asAddress(values["fulfiller"]),
			PrintType: asUint8(values["printType"]),
			Split:     asDecimal(values["split"]),
		}, nil
	case "FulfillerSplitSet":
		return domain.FulfillerSplitSetPayload{
			Fulfiller: asAddress(values["fulfiller"]),
			PrintType: asUint8(values["printType"]),
			Split:     asDecimal(values["split"]),
		}, nil
	case "OracleUpdated":
		return domain.OracleUpdatedPayload{
			Currency: asAddress(values["currency"]),
			Rate:     asDecimal(values["rate"]),
		}, nil
	case "TreasurySplitSet":
		return domain.TreasurySplitSetPayload{
			Treasury:  asAddress(values["treasury"]),
			PrintType: asUint8(values["printType"]),
			Split:     asDecimal(values["split"]),
		}, nil
	default:
		return nil, fmt.Errorf("no payload mapping for event %s", name)
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asDecimal(v interface{}) string {
	b, ok := v.(*big.Int)
	if !ok {
		return ""
	}
	return b.String()
}

func asDecimals(v interface{}) []string {
	values, ok := v.([]*big.Int)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, b := range values {
		out = append(out, b.String())
	}
	return out
}

func asAddress(v interface{}) string {
	addr, ok := v.(common.Address)
	if !ok {
		return ""
	}
	return addr.Hex()
}

func asGalleryID(v interface{}) uint32 {
	b, ok := v.(*big.Int)
	if !ok {
		return 0
	}
	return uint32(b.Uint64()) //nolint:gosec,G115
}

func asUint32s(v interface{}) []uint32 {
	values, ok := v.([]uint32)
	if !ok {
		return nil
	}
	return values
}

func asUint8(v interface{}) uint8 {
	b, _ := v.(uint8)
	return b
}

func asUint8s(v interface{}) []uint8 {
	values, ok := v.([]uint8)
	if !ok {
		return nil
	}
	return values
}
