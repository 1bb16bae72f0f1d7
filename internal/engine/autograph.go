package engine

import (
	"context"
	"math/big"

	"gorm.io/datatypes"

	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

func (e *Engine) handleAutographCreated(ctx context.Context, event *domain.Event, p *domain.AutographCreatedPayload) error {
	price, err := e.autograph.AutographPrice(ctx)
	if err != nil {
		return err
	}
	pageCount, err := e.autograph.AutographPageCount(ctx)
	if err != nil {
		return err
	}
	accepted, err := e.autograph.AutographAcceptedTokens(ctx)
	if err != nil {
		return err
	}
	profileID, err := e.autograph.AutographProfileID(ctx)
	if err != nil {
		return err
	}
	pubID, err := e.autograph.AutographPubID(ctx)
	if err != nil {
		return err
	}
	designer, err := e.autograph.AutographDesigner(ctx)
	if err != nil {
		return err
	}
	minted, err := e.autograph.AutographMinted(ctx)
	if err != nil {
		return err
	}

	// Pages live at indices 1..pageCount-1; index 0 is the cover
	pages := make(datatypes.JSONSlice[string], 0)
	for i := uint32(1); i < pageCount; i++ {
		page, err := e.autograph.AutographPage(ctx, new(big.Int).SetUint64(uint64(i)))
		if err != nil {
			return err
		}
		pages = append(pages, page)
	}

	autograph := &schema.Autograph{
		ID:             event.Key(),
		URI:            p.URI,
		Amount:         p.Amount,
		Price:          price.String(),
		PageCount:      pageCount,
		AcceptedTokens: addressesToStrings(accepted),
		ProfileID:      profileID.String(),
		PubID:          pubID.String(),
		Designer:       designer.Hex(),
		MintedTokens:   bigIntsToStrings(minted),
		Pages:          pages,
		BlockNumber:    event.BlockNumber,
		BlockTimestamp: event.BlockTimestamp,
		TxHash:         event.TxHash,
	}
	return e.store.SaveAutograph(ctx, autograph)
}
