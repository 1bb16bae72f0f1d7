package engine

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

func (e *Engine) handleCurrencyAdded(ctx context.Context, event *domain.Event, p *domain.CurrencyAddedPayload) error {
	wei, err := e.splits.WeiByCurrency(ctx, common.HexToAddress(p.Currency))
	if err != nil {
		return err
	}

	currency := &schema.Currency{
		ID:             domain.CurrencyRecordID(p.Currency),
		Currency:       p.Currency,
		Wei:            wei.String(),
		BlockNumber:    event.BlockNumber,
		BlockTimestamp: event.BlockTimestamp,
		TxHash:         event.TxHash,
	}
	return e.store.SaveCurrency(ctx, currency)
}

func (e *Engine) handleOracleUpdated(ctx context.Context, event *domain.Event, p *domain.OracleUpdatedPayload) error {
	currency, err := e.store.GetCurrency(ctx, domain.CurrencyRecordID(p.Currency))
	if err != nil {
		return err
	}
	if currency == nil {
		logger.DebugCtx(ctx, "Oracle update for unregistered currency",
			zap.String("currency", p.Currency), zap.String("key", event.Key()))
		return nil
	}

	rate, err := e.splits.RateByCurrency(ctx, common.HexToAddress(p.Currency))
	if err != nil {
		return err
	}

	rateValue := rate.String()
	currency.Rate = &rateValue
	return e.store.SaveCurrency(ctx, currency)
}
