// Package contracts provides read-only views of the pinned AutographData
// and PrintSplits contracts. Every read is a synchronous eth_call against
// the configured address; callers decide what a failed read means.
package contracts

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
)

// autographDataABI covers the view methods the engine reads. Gallery ids
// travel as uint256 on the wire even though they fit in 32 bits.
const autographDataABI = `[
	{"inputs":[{"name":"collectionId","type":"uint256"},{"name":"galleryId","type":"uint256"}],"name":"getCollectionAcceptedTokensByGalleryId","outputs":[{"name":"","type":"address[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"collectionId","type":"uint256"},{"name":"galleryId","type":"uint256"}],"name":"getCollectionPriceByGalleryId","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"collectionId","type":"uint256"},{"name":"galleryId","type":"uint256"}],"name":"getCollectionAmountByGalleryId","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"collectionId","type":"uint256"},{"name":"galleryId","type":"uint256"}],"name":"getCollectionDesignerByGalleryId","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"collectionId","type":"uint256"},{"name":"galleryId","type":"uint256"}],"name":"getCollectionURIByGalleryId","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"collectionId","type":"uint256"},{"name":"galleryId","type":"uint256"}],"name":"getCollectionTypeByGalleryId","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"collectionId","type":"uint256"},{"name":"galleryId","type":"uint256"}],"name":"getMintedTokenIdsByGalleryId","outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"collectionId","type":"uint256"}],"name":"getCollectionGallery","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderBuyer","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderFulfillment","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderAmounts","outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderSubTotals","outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderParentIds","outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderCurrencies","outputs":[{"name":"","type":"address[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderCollectionIds","outputs":[{"name":"","type":"uint256[][]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"orderId","type":"uint256"}],"name":"getOrderMintedTokens","outputs":[{"name":"","type":"uint256[][]"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getAutographPrice","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getAutographPageCount","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getAutographAcceptedTokens","outputs":[{"name":"","type":"address[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getAutographProfileId","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getAutographPubId","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getAutographDesigner","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getAutographMinted","outputs":[{"name":"","type":"uint256[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"page","type":"uint256"}],"name":"getAutographPage","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

// AutographDataReader reads derived state from the AutographData contract
//
//go:generate mockgen -source=autograph_data.go -destination=../mocks/autograph_data.go -package=mocks -mock_names=AutographDataReader=MockAutographDataReader
type AutographDataReader interface {
	// CollectionAcceptedTokens returns the accepted payment tokens of a collection in a gallery
	CollectionAcceptedTokens(ctx context.Context, collectionID *big.Int, galleryID uint32) ([]common.Address, error)
	// CollectionPrice returns the price of a collection in a gallery
	CollectionPrice(ctx context.Context, collectionID *big.Int, galleryID uint32) (*big.Int, error)
	// CollectionAmount returns the edition size of a collection in a gallery
	CollectionAmount(ctx context.Context, collectionID *big.Int, galleryID uint32) (*big.Int, error)
	// CollectionDesigner returns the designer of a collection in a gallery
	CollectionDesigner(ctx context.Context, collectionID *big.Int, galleryID uint32) (common.Address, error)
	// CollectionURI returns the metadata URI of a collection in a gallery
	CollectionURI(ctx context.Context, collectionID *big.Int, galleryID uint32) (string, error)
	// CollectionType returns the type discriminator of a collection in a gallery
	CollectionType(ctx context.Context, collectionID *big.Int, galleryID uint32) (uint8, error)
	// MintedTokenIDs returns the minted token ids of a collection in a gallery
	MintedTokenIDs(ctx context.Context, collectionID *big.Int, galleryID uint32) ([]*big.Int, error)
	// CollectionGallery returns the gallery a collection belongs to
	CollectionGallery(ctx context.Context, collectionID *big.Int) (uint32, error)

	// OrderBuyer returns the buyer of an order
	OrderBuyer(ctx context.Context, orderID *big.Int) (common.Address, error)
	// OrderFulfillment returns the fulfillment data of an order
	OrderFulfillment(ctx context.Context, orderID *big.Int) (string, error)
	// OrderAmounts returns the per-suborder amounts of an order
	OrderAmounts(ctx context.Context, orderID *big.Int) ([]*big.Int, error)
	// OrderSubTotals returns the per-suborder subtotals of an order
	OrderSubTotals(ctx context.Context, orderID *big.Int) ([]*big.Int, error)
	// OrderParentIDs returns the per-suborder parent ids of an order
	OrderParentIDs(ctx context.Context, orderID *big.Int) ([]*big.Int, error)
	// OrderCurrencies returns the per-suborder payment tokens of an order
	OrderCurrencies(ctx context.Context, orderID *big.Int) ([]common.Address, error)
	// OrderCollectionIDs returns the per-suborder collection id matrix of an order
	OrderCollectionIDs(ctx context.Context, orderID *big.Int) ([][]*big.Int, error)
	// OrderMintedTokens returns the per-suborder minted token matrix of an order
	OrderMintedTokens(ctx context.Context, orderID *big.Int) ([][]*big.Int, error)

	// AutographPrice returns the autograph price
	AutographPrice(ctx context.Context) (*big.Int, error)
	// AutographPageCount returns the autograph page count
	AutographPageCount(ctx context.Context) (uint32, error)
	// AutographAcceptedTokens returns the accepted payment tokens of the autograph
	AutographAcceptedTokens(ctx context.Context) ([]common.Address, error)
	// AutographProfileID returns the connected profile id
	AutographProfileID(ctx context.Context) (*big.Int, error)
	// AutographPubID returns the connected publication id
	AutographPubID(ctx context.Context) (*big.Int, error)
	// AutographDesigner returns the autograph designer
	AutographDesigner(ctx context.Context) (common.Address, error)
	// AutographMinted returns the minted autograph token ids
	AutographMinted(ctx context.Context) ([]*big.Int, error)
	// AutographPage returns the page text at the given index
	AutographPage(ctx context.Context, page *big.Int) (string, error)
}

type autographDataReader struct {
	address common.Address
	abi     abi.ABI
	client  adapter.EthClient
}

// NewAutographDataReader creates a reader pinned to the given contract address
func NewAutographDataReader(address string, client adapter.EthClient) (AutographDataReader, error) {
	parsed, err := abi.JSON(strings.NewReader(autographDataABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse AutographData ABI: %w", err)
	}

	return &autographDataReader{
		address: common.HexToAddress(address),
		abi:     parsed,
		client:  client,
	}, nil
}

func (r *autographDataReader) call(ctx context.Context, out interface{}, method string, args ...interface{}) error {
	data, err := r.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}

	result, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &r.address,
		Data: data,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}

	if err := r.abi.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	return nil
}

func galleryArg(galleryID uint32) *big.Int {
	return new(big.Int).SetUint64(uint64(galleryID))
}

func (r *autographDataReader) CollectionAcceptedTokens(ctx context.Context, collectionID *big.Int, galleryID uint32) ([]common.Address, error) {
	var out []common.Address
	if err := r.call(ctx, &out, "getCollectionAcceptedTokensByGalleryId", collectionID, galleryArg(galleryID)); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) CollectionPrice(ctx context.Context, collectionID *big.Int, galleryID uint32) (*big.Int, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getCollectionPriceByGalleryId", collectionID, galleryArg(galleryID)); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) CollectionAmount(ctx context.Context, collectionID *big.Int, galleryID uint32) (*big.Int, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getCollectionAmountByGalleryId", collectionID, galleryArg(galleryID)); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) CollectionDesigner(ctx context.Context, collectionID *big.Int, galleryID uint32) (common.Address, error) {
	var out common.Address
	if err := r.call(ctx, &out, "getCollectionDesignerByGalleryId", collectionID, galleryArg(galleryID)); err != nil {
		return common.Address{}, err
	}
	return out, nil
}

func (r *autographDataReader) CollectionURI(ctx context.Context, collectionID *big.Int, galleryID uint32) (string, error) {
	var out string
	if err := r.call(ctx, &out, "getCollectionURIByGalleryId", collectionID, galleryArg(galleryID)); err != nil {
		return "", err
	}
	return out, nil
}

func (r *autographDataReader) CollectionType(ctx context.Context, collectionID *big.Int, galleryID uint32) (uint8, error) {
	var out uint8
	if err := r.call(ctx, &out, "getCollectionTypeByGalleryId", collectionID, galleryArg(galleryID)); err != nil {
		return 0, err
	}
	return out, nil
}

func (r *autographDataReader) MintedTokenIDs(ctx context.Context, collectionID *big.Int, galleryID uint32) ([]*big.Int, error) {
	var out []*big.Int
	if err := r.call(ctx, &out, "getMintedTokenIdsByGalleryId", collectionID, galleryArg(galleryID)); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) CollectionGallery(ctx context.Context, collectionID *big.Int) (uint32, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getCollectionGallery", collectionID); err != nil {
		return 0, err
	}
	return uint32(out.Uint64()), nil //nolint:gosec,G115
}

func (r *autographDataReader) OrderBuyer(ctx context.Context, orderID *big.Int) (common.Address, error) {
	var out common.Address
	if err := r.call(ctx, &out, "getOrderBuyer", orderID); err != nil {
		return common.Address{}, err
	}
	return out, nil
}

func (r *autographDataReader) OrderFulfillment(ctx context.Context, orderID *big.Int) (string, error) {
	var out string
	if err := r.call(ctx, &out, "getOrderFulfillment", orderID); err != nil {
		return "", err
	}
	return out, nil
}

func (r *autographDataReader) OrderAmounts(ctx context.Context, orderID *big.Int) ([]*big.Int, error) {
	var out []*big.Int
	if err := r.call(ctx, &out, "getOrderAmounts", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) OrderSubTotals(ctx context.Context, orderID *big.Int) ([]*big.Int, error) {
	var out []*big.Int
	if err := r.call(ctx, &out, "getOrderSubTotals", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) OrderParentIDs(ctx context.Context, orderID *big.Int) ([]*big.Int, error) {
	var out []*big.Int
	if err := r.call(ctx, &out, "getOrderParentIds", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) OrderCurrencies(ctx context.Context, orderID *big.Int) ([]common.Address, error) {
	var out []common.Address
	if err := r.call(ctx, &out, "getOrderCurrencies", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) OrderCollectionIDs(ctx context.Context, orderID *big.Int) ([][]*big.Int, error) {
	var out [][]*big.Int
	if err := r.call(ctx, &out, "getOrderCollectionIds", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) OrderMintedTokens(ctx context.Context, orderID *big.Int) ([][]*big.Int, error) {
	var out [][]*big.Int
	if err := r.call(ctx, &out, "getOrderMintedTokens", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) AutographPrice(ctx context.Context) (*big.Int, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getAutographPrice"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) AutographPageCount(ctx context.Context) (uint32, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getAutographPageCount"); err != nil {
		return 0, err
	}
	return uint32(out.Uint64()), nil //nolint:gosec,G115
}

func (r *autographDataReader) AutographAcceptedTokens(ctx context.Context) ([]common.Address, error) {
	var out []common.Address
	if err := r.call(ctx, &out, "getAutographAcceptedTokens"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) AutographProfileID(ctx context.Context) (*big.Int, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getAutographProfileId"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) AutographPubID(ctx context.Context) (*big.Int, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getAutographPubId"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) AutographDesigner(ctx context.Context) (common.Address, error) {
	var out common.Address
	if err := r.call(ctx, &out, "getAutographDesigner"); err != nil {
		return common.Address{}, err
	}
	return out, nil
}

func (r *autographDataReader) AutographMinted(ctx context.Context) ([]*big.Int, error) {
	var out []*big.Int
	if err := r.call(ctx, &out, "getAutographMinted"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *autographDataReader) AutographPage(ctx context.Context, page *big.Int) (string, error) {
	var out string
	if err := r.call(ctx, &out, "getAutographPage", page); err != nil {
		return "", err
	}
	return out, nil
}
