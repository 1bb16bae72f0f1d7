package engine

import (
	"context"
	"math/big"

	"gorm.io/datatypes"

	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

// remainingThreshold is the minimum unminted remainder for the
// availability flag after a sale
var remainingThreshold = big.NewInt(2)

func (e *Engine) handleOrderCreated(ctx context.Context, event *domain.Event, p *domain.OrderCreatedPayload) error {
	orderID, err := parseBig(p.OrderID)
	if err != nil {
		return err
	}

	buyer, err := e.autograph.OrderBuyer(ctx, orderID)
	if err != nil {
		return err
	}
	fulfillment, err := e.autograph.OrderFulfillment(ctx, orderID)
	if err != nil {
		return err
	}
	amounts, err := e.autograph.OrderAmounts(ctx, orderID)
	if err != nil {
		return err
	}
	subTotals, err := e.autograph.OrderSubTotals(ctx, orderID)
	if err != nil {
		return err
	}
	parentIDs, err := e.autograph.OrderParentIDs(ctx, orderID)
	if err != nil {
		return err
	}
	currencies, err := e.autograph.OrderCurrencies(ctx, orderID)
	if err != nil {
		return err
	}
	collectionMatrix, err := e.autograph.OrderCollectionIDs(ctx, orderID)
	if err != nil {
		return err
	}
	mintedMatrix, err := e.autograph.OrderMintedTokens(ctx, orderID)
	if err != nil {
		return err
	}

	// Refresh every sold collection we know about. Reads complete for the
	// whole matrix before any row is written back.
	var updated []*schema.Collection
	for _, row := range collectionMatrix {
		for _, collectionID := range row {
			collection, err := e.store.GetCollection(ctx, collectionID.String())
			if err != nil {
				return err
			}
			if collection == nil {
				continue
			}

			galleryID, err := e.autograph.CollectionGallery(ctx, collectionID)
			if err != nil {
				return err
			}
			minted, err := e.autograph.MintedTokenIDs(ctx, collectionID, galleryID)
			if err != nil {
				return err
			}

			amount, err := parseBig(collection.Amount)
			if err != nil {
				return err
			}
			remaining := new(big.Int).Sub(amount, big.NewInt(int64(len(minted))))

			collection.MintedTokens = bigIntsToStrings(minted)
			collection.Mix = remaining.Cmp(remainingThreshold) > 0
			updated = append(updated, collection)
		}
	}

	for _, collection := range updated {
		if err := e.store.SaveCollection(ctx, collection); err != nil {
			return err
		}
	}

	order := &schema.Order{
		ID:             event.Key(),
		OrderID:        p.OrderID,
		SubOrderTypes:  datatypes.NewJSONSlice(p.SubOrderTypes),
		Total:          p.Total,
		Buyer:          buyer.Hex(),
		Fulfillment:    fulfillment,
		Amounts:        bigIntsToStrings(amounts),
		SubTotals:      bigIntsToStrings(subTotals),
		ParentIDs:      bigIntsToStrings(parentIDs),
		Currencies:     addressesToStrings(currencies),
		CollectionIDs:  domain.EncodeNestedDecimal(collectionMatrix),
		MintedTokens:   domain.EncodeNestedDecimal(mintedMatrix),
		BlockNumber:    event.BlockNumber,
		BlockTimestamp: event.BlockTimestamp,
		TxHash:         event.TxHash,
	}
	return e.store.SaveOrder(ctx, order)
}
