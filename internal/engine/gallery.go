package engine

import (
	"context"
	"math/big"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

// mixThreshold is the minimum edition size for the availability flag
var mixThreshold = big.NewInt(3)

// readCollection builds a collection record entirely from contract reads.
// Nothing is written here; callers persist the returned record only after
// every read of the event has succeeded.
func (e *Engine) readCollection(ctx context.Context, collectionID string, galleryID uint32) (*schema.Collection, error) {
	id, err := parseBig(collectionID)
	if err != nil {
		return nil, err
	}

	accepted, err := e.autograph.CollectionAcceptedTokens(ctx, id, galleryID)
	if err != nil {
		return nil, err
	}
	price, err := e.autograph.CollectionPrice(ctx, id, galleryID)
	if err != nil {
		return nil, err
	}
	amount, err := e.autograph.CollectionAmount(ctx, id, galleryID)
	if err != nil {
		return nil, err
	}
	designer, err := e.autograph.CollectionDesigner(ctx, id, galleryID)
	if err != nil {
		return nil, err
	}
	uri, err := e.autograph.CollectionURI(ctx, id, galleryID)
	if err != nil {
		return nil, err
	}
	collectionType, err := e.autograph.CollectionType(ctx, id, galleryID)
	if err != nil {
		return nil, err
	}
	minted, err := e.autograph.MintedTokenIDs(ctx, id, galleryID)
	if err != nil {
		return nil, err
	}

	collection := &schema.Collection{
		ID:             collectionID,
		CollectionID:   collectionID,
		GalleryID:      galleryID,
		AcceptedTokens: addressesToStrings(accepted),
		Price:          price.String(),
		Amount:         amount.String(),
		Designer:       designer.Hex(),
		URI:            uri,
		Type:           collectionType,
		Mix:            amount.Cmp(mixThreshold) >= 0,
		MintedTokens:   bigIntsToStrings(minted),
	}

	if hash := contentHash(uri); hash != "" {
		collection.MetadataHash = &hash
	}

	return collection, nil
}

func collectionRecordIDs(collections []*schema.Collection) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(collections))
	for _, collection := range collections {
		out = append(out, collection.ID)
	}
	return out
}

func (e *Engine) saveCollections(ctx context.Context, collections []*schema.Collection) error {
	for _, collection := range collections {
		if err := e.store.SaveCollection(ctx, collection); err != nil {
			return err
		}
		if err := e.registerMetadata(ctx, collection); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) handleGalleryCreated(ctx context.Context, event *domain.Event, p *domain.GalleryCreatedPayload) error {
	collections := make([]*schema.Collection, 0, len(p.CollectionIDs))
	for _, collectionID := range p.CollectionIDs {
		collection, err := e.readCollection(ctx, collectionID, p.GalleryID)
		if err != nil {
			return err
		}
		collections = append(collections, collection)
	}

	if err := e.saveCollections(ctx, collections); err != nil {
		return err
	}

	gallery := &schema.Gallery{
		ID:             domain.GalleryRecordID(p.GalleryID),
		GalleryID:      p.GalleryID,
		Designer:       p.Designer,
		CollectionIDs:  datatypes.NewJSONSlice(p.CollectionIDs),
		Collections:    collectionRecordIDs(collections),
		BlockNumber:    event.BlockNumber,
		BlockTimestamp: event.BlockTimestamp,
		TxHash:         event.TxHash,
	}
	return e.store.SaveGallery(ctx, gallery)
}

func (e *Engine) handleGalleryUpdated(ctx context.Context, event *domain.Event, p *domain.GalleryUpdatedPayload) error {
	gallery, err := e.store.GetGallery(ctx, domain.GalleryRecordID(p.GalleryID))
	if err != nil {
		return err
	}
	if gallery == nil {
		logger.DebugCtx(ctx, "Gallery update for unknown gallery",
			zap.Uint32("gallery_id", p.GalleryID), zap.String("key", event.Key()))
		return nil
	}

	collections := make([]*schema.Collection, 0, len(p.CollectionIDs))
	for _, collectionID := range p.CollectionIDs {
		collection, err := e.readCollection(ctx, collectionID, p.GalleryID)
		if err != nil {
			return err
		}
		collections = append(collections, collection)
	}

	if err := e.saveCollections(ctx, collections); err != nil {
		return err
	}

	// Membership is concatenated as emitted: duplicates stay, order holds
	gallery.CollectionIDs = append(gallery.CollectionIDs, p.CollectionIDs...)
	gallery.Collections = append(gallery.Collections, collectionRecordIDs(collections)...)
	return e.store.SaveGallery(ctx, gallery)
}

func (e *Engine) handleGalleryDeleted(ctx context.Context, event *domain.Event, p *domain.GalleryDeletedPayload) error {
	id := domain.GalleryRecordID(p.GalleryID)
	gallery, err := e.store.GetGallery(ctx, id)
	if err != nil {
		return err
	}
	if gallery == nil {
		logger.DebugCtx(ctx, "Gallery delete for unknown gallery",
			zap.Uint32("gallery_id", p.GalleryID), zap.String("key", event.Key()))
		return nil
	}
	return e.store.DeleteGallery(ctx, id)
}

func (e *Engine) handleCollectionDeleted(ctx context.Context, _ *domain.Event, p *domain.CollectionDeletedPayload) error {
	collection, err := e.store.GetCollection(ctx, p.CollectionID)
	if err != nil {
		return err
	}
	if collection != nil {
		if err := e.store.DeleteCollection(ctx, p.CollectionID); err != nil {
			return err
		}
	}

	gallery, err := e.store.GetGallery(ctx, domain.GalleryRecordID(p.GalleryID))
	if err != nil {
		return err
	}
	if gallery == nil {
		return nil
	}

	// Filter-rebuild the membership list preserving order
	kept := make(datatypes.JSONSlice[string], 0, len(gallery.CollectionIDs))
	for _, id := range gallery.CollectionIDs {
		if id != p.CollectionID {
			kept = append(kept, id)
		}
	}
	gallery.CollectionIDs = kept
	return e.store.SaveGallery(ctx, gallery)
}

func (e *Engine) handlePublicationConnected(ctx context.Context, event *domain.Event, p *domain.PublicationConnectedPayload) error {
	collection, err := e.store.GetCollection(ctx, p.CollectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		logger.DebugCtx(ctx, "Publication connected to unknown collection",
			zap.String("collection_id", p.CollectionID), zap.String("key", event.Key()))
		return nil
	}

	// Parallel lists: index i of both belongs to the same connection
	collection.ProfileIDs = append(collection.ProfileIDs, p.ProfileID)
	collection.PubIDs = append(collection.PubIDs, p.PubID)
	return e.store.SaveCollection(ctx, collection)
}
