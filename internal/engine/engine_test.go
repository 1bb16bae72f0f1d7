package engine_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/domain"
	"github.com/autograph-quarterly/autograph-indexer/internal/engine"
	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/mocks"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	testDesigner = "0x9aBc000000000000000000000000000000000001"
	testBuyer    = "0x9aBc000000000000000000000000000000000002"
)

type testEngine struct {
	engine    *engine.Engine
	store     *mocks.MockStore
	autograph *mocks.MockAutographDataReader
	splits    *mocks.MockPrintSplitsReader
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockStore(ctrl)
	mockAutograph := mocks.NewMockAutographDataReader(ctrl)
	mockSplits := mocks.NewMockPrintSplitsReader(ctrl)

	return &testEngine{
		engine:    engine.NewEngine(mockStore, mockAutograph, mockSplits, adapter.NewJSON()),
		store:     mockStore,
		autograph: mockAutograph,
		splits:    mockSplits,
	}
}

func makeEvent(t *testing.T, kind domain.EventKind, payload interface{}) *domain.Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return &domain.Event{
		Kind:           kind,
		TxHash:         "0xdeadbeef",
		LogIndex:       3,
		BlockNumber:    100,
		BlockTimestamp: time.Unix(1700000000, 0).UTC(),
		Payload:        raw,
	}
}

// expectCollectionReads wires the seven per-collection contract reads
func (te *testEngine) expectCollectionReads(collectionID int64, galleryID uint32, amount int64, uri string, minted []*big.Int) {
	id := big.NewInt(collectionID)
	te.autograph.EXPECT().
		CollectionAcceptedTokens(gomock.Any(), id, galleryID).
		Return([]common.Address{common.HexToAddress(testDesigner)}, nil)
	te.autograph.EXPECT().
		CollectionPrice(gomock.Any(), id, galleryID).
		Return(big.NewInt(1000), nil)
	te.autograph.EXPECT().
		CollectionAmount(gomock.Any(), id, galleryID).
		Return(big.NewInt(amount), nil)
	te.autograph.EXPECT().
		CollectionDesigner(gomock.Any(), id, galleryID).
		Return(common.HexToAddress(testDesigner), nil)
	te.autograph.EXPECT().
		CollectionURI(gomock.Any(), id, galleryID).
		Return(uri, nil)
	te.autograph.EXPECT().
		CollectionType(gomock.Any(), id, galleryID).
		Return(uint8(1), nil)
	te.autograph.EXPECT().
		MintedTokenIDs(gomock.Any(), id, galleryID).
		Return(minted, nil)
}

func (te *testEngine) expectAudit(t *testing.T, event *domain.Event) {
	te.store.EXPECT().
		SaveEventRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *schema.EventRecord) error {
			assert.Equal(t, event.Key(), record.ID)
			assert.Equal(t, string(event.Kind), record.Kind)
			assert.Equal(t, event.BlockNumber, record.BlockNumber)
			return nil
		})
}

func TestGalleryCreatedIndexesCollections(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindGalleryCreated, domain.GalleryCreatedPayload{
		CollectionIDs: []string{"101"},
		Designer:      testDesigner,
		GalleryID:     7,
	})

	te.expectCollectionReads(101, 7, 5, "ipfs://site/QmMeta", []*big.Int{big.NewInt(1)})

	te.store.EXPECT().
		SaveCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collection *schema.Collection) error {
			assert.Equal(t, "101", collection.ID)
			assert.Equal(t, uint32(7), collection.GalleryID)
			assert.Equal(t, "5", collection.Amount)
			assert.True(t, collection.Mix)
			assert.Equal(t, datatypes.JSONSlice[string]{"1"}, collection.MintedTokens)
			require.NotNil(t, collection.MetadataHash)
			assert.Equal(t, "QmMeta", *collection.MetadataHash)
			return nil
		})
	te.store.EXPECT().
		RegisterMetadataJob(gomock.Any(), "QmMeta").
		Return(true, nil)
	te.store.EXPECT().
		SaveGallery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gallery *schema.Gallery) error {
			assert.Equal(t, "7", gallery.ID)
			assert.Equal(t, datatypes.JSONSlice[string]{"101"}, gallery.CollectionIDs)
			assert.Equal(t, datatypes.JSONSlice[string]{"101"}, gallery.Collections)
			assert.Equal(t, testDesigner, gallery.Designer)
			return nil
		})
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestGalleryCreatedSmallEditionIsNotMix(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindGalleryCreated, domain.GalleryCreatedPayload{
		CollectionIDs: []string{"101"},
		Designer:      testDesigner,
		GalleryID:     7,
	})

	te.expectCollectionReads(101, 7, 2, "ipfs://site/QmMeta", nil)

	te.store.EXPECT().
		SaveCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collection *schema.Collection) error {
			assert.False(t, collection.Mix)
			assert.Empty(t, collection.MintedTokens)
			return nil
		})
	te.store.EXPECT().RegisterMetadataJob(gomock.Any(), "QmMeta").Return(false, nil)
	te.store.EXPECT().SaveGallery(gomock.Any(), gomock.Any()).Return(nil)
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestGalleryCreatedURIWithoutHash(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindGalleryCreated, domain.GalleryCreatedPayload{
		CollectionIDs: []string{"101"},
		Designer:      testDesigner,
		GalleryID:     7,
	})

	// URI ending in a slash has no final segment, so no metadata job
	te.expectCollectionReads(101, 7, 5, "https://example.com/meta/", nil)

	te.store.EXPECT().
		SaveCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collection *schema.Collection) error {
			assert.Nil(t, collection.MetadataHash)
			return nil
		})
	te.store.EXPECT().SaveGallery(gomock.Any(), gomock.Any()).Return(nil)
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestGalleryUpdatedUnknownGalleryIsNoOp(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindGalleryUpdated, domain.GalleryUpdatedPayload{
		CollectionIDs: []string{"102"},
		Designer:      testDesigner,
		GalleryID:     7,
	})

	te.store.EXPECT().GetGallery(gomock.Any(), "7").Return(nil, nil)
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestGalleryUpdatedConcatenatesMembership(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindGalleryUpdated, domain.GalleryUpdatedPayload{
		CollectionIDs: []string{"101", "102"},
		Designer:      testDesigner,
		GalleryID:     7,
	})

	te.store.EXPECT().GetGallery(gomock.Any(), "7").Return(&schema.Gallery{
		ID:            "7",
		GalleryID:     7,
		CollectionIDs: datatypes.JSONSlice[string]{"101"},
		Collections:   nil,
	}, nil)

	te.expectCollectionReads(101, 7, 5, "ipfs://site/QmA", nil)
	te.expectCollectionReads(102, 7, 3, "ipfs://site/QmB", nil)

	te.store.EXPECT().SaveCollection(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	te.store.EXPECT().RegisterMetadataJob(gomock.Any(), "QmA").Return(false, nil)
	te.store.EXPECT().RegisterMetadataJob(gomock.Any(), "QmB").Return(true, nil)
	te.store.EXPECT().
		SaveGallery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gallery *schema.Gallery) error {
			// "101" appears twice: membership concatenates without dedup
			assert.Equal(t, datatypes.JSONSlice[string]{"101", "101", "102"}, gallery.CollectionIDs)
			assert.Equal(t, datatypes.JSONSlice[string]{"101", "102"}, gallery.Collections)
			return nil
		})
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestGalleryDeleted(t *testing.T) {
	t.Run("existing gallery removed", func(t *testing.T) {
		te := newTestEngine(t)
		event := makeEvent(t, domain.KindGalleryDeleted, domain.GalleryDeletedPayload{
			Designer:  testDesigner,
			GalleryID: 7,
		})

		te.store.EXPECT().GetGallery(gomock.Any(), "7").Return(&schema.Gallery{ID: "7"}, nil)
		te.store.EXPECT().DeleteGallery(gomock.Any(), "7").Return(nil)
		te.expectAudit(t, event)

		require.NoError(t, te.engine.Handle(context.Background(), event))
	})

	t.Run("unknown gallery is a no-op", func(t *testing.T) {
		te := newTestEngine(t)
		event := makeEvent(t, domain.KindGalleryDeleted, domain.GalleryDeletedPayload{
			Designer:  testDesigner,
			GalleryID: 7,
		})

		te.store.EXPECT().GetGallery(gomock.Any(), "7").Return(nil, nil)
		te.expectAudit(t, event)

		require.NoError(t, te.engine.Handle(context.Background(), event))
	})
}

func TestCollectionDeletedFiltersMembership(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindCollectionDeleted, domain.CollectionDeletedPayload{
		CollectionID: "101",
		GalleryID:    7,
	})

	te.store.EXPECT().GetCollection(gomock.Any(), "101").Return(&schema.Collection{ID: "101"}, nil)
	te.store.EXPECT().DeleteCollection(gomock.Any(), "101").Return(nil)
	te.store.EXPECT().GetGallery(gomock.Any(), "7").Return(&schema.Gallery{
		ID:            "7",
		CollectionIDs: datatypes.JSONSlice[string]{"100", "101", "102"},
	}, nil)
	te.store.EXPECT().
		SaveGallery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gallery *schema.Gallery) error {
			assert.Equal(t, datatypes.JSONSlice[string]{"100", "102"}, gallery.CollectionIDs)
			return nil
		})
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestCollectionDeletedUnknownEverything(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindCollectionDeleted, domain.CollectionDeletedPayload{
		CollectionID: "101",
		GalleryID:    7,
	})

	te.store.EXPECT().GetCollection(gomock.Any(), "101").Return(nil, nil)
	te.store.EXPECT().GetGallery(gomock.Any(), "7").Return(nil, nil)
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestOrderCreatedRefreshesSoldCollections(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		minted      []*big.Int
		expectedMix bool
	}{
		{
			name:        "three remaining keeps mix",
			amount:      "5",
			minted:      []*big.Int{big.NewInt(1), big.NewInt(2)},
			expectedMix: true,
		},
		{
			name:        "two remaining clears mix",
			amount:      "5",
			minted:      []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)},
			expectedMix: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEngine(t)
			ctx := context.Background()

			event := makeEvent(t, domain.KindOrderCreated, domain.OrderCreatedPayload{
				SubOrderTypes: []uint8{0},
				Total:         "5000",
				OrderID:       "42",
			})

			orderID := big.NewInt(42)
			te.autograph.EXPECT().OrderBuyer(gomock.Any(), orderID).
				Return(common.HexToAddress(testBuyer), nil)
			te.autograph.EXPECT().OrderFulfillment(gomock.Any(), orderID).
				Return("encrypted", nil)
			te.autograph.EXPECT().OrderAmounts(gomock.Any(), orderID).
				Return([]*big.Int{big.NewInt(1)}, nil)
			te.autograph.EXPECT().OrderSubTotals(gomock.Any(), orderID).
				Return([]*big.Int{big.NewInt(5000)}, nil)
			te.autograph.EXPECT().OrderParentIDs(gomock.Any(), orderID).
				Return([]*big.Int{big.NewInt(0)}, nil)
			te.autograph.EXPECT().OrderCurrencies(gomock.Any(), orderID).
				Return([]common.Address{common.HexToAddress(testDesigner)}, nil)
			te.autograph.EXPECT().OrderCollectionIDs(gomock.Any(), orderID).
				Return([][]*big.Int{{big.NewInt(101)}}, nil)
			te.autograph.EXPECT().OrderMintedTokens(gomock.Any(), orderID).
				Return([][]*big.Int{{big.NewInt(9)}}, nil)

			te.store.EXPECT().GetCollection(gomock.Any(), "101").Return(&schema.Collection{
				ID:           "101",
				CollectionID: "101",
				Amount:       tt.amount,
				Mix:          true,
			}, nil)
			te.autograph.EXPECT().CollectionGallery(gomock.Any(), big.NewInt(101)).
				Return(uint32(7), nil)
			te.autograph.EXPECT().MintedTokenIDs(gomock.Any(), big.NewInt(101), uint32(7)).
				Return(tt.minted, nil)

			te.store.EXPECT().
				SaveCollection(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, collection *schema.Collection) error {
					assert.Equal(t, tt.expectedMix, collection.Mix)
					assert.Len(t, collection.MintedTokens, len(tt.minted))
					return nil
				})
			te.store.EXPECT().
				SaveOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, order *schema.Order) error {
					assert.Equal(t, event.Key(), order.ID)
					assert.Equal(t, "42", order.OrderID)
					assert.Equal(t, `[["101"]]`, order.CollectionIDs)
					assert.Equal(t, `[["9"]]`, order.MintedTokens)
					assert.Equal(t, common.HexToAddress(testBuyer).Hex(), order.Buyer)
					return nil
				})
			te.expectAudit(t, event)

			require.NoError(t, te.engine.Handle(ctx, event))
		})
	}
}

func TestOrderCreatedSkipsUnknownCollections(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindOrderCreated, domain.OrderCreatedPayload{
		SubOrderTypes: []uint8{0},
		Total:         "100",
		OrderID:       "43",
	})

	orderID := big.NewInt(43)
	te.autograph.EXPECT().OrderBuyer(gomock.Any(), orderID).Return(common.Address{}, nil)
	te.autograph.EXPECT().OrderFulfillment(gomock.Any(), orderID).Return("", nil)
	te.autograph.EXPECT().OrderAmounts(gomock.Any(), orderID).Return(nil, nil)
	te.autograph.EXPECT().OrderSubTotals(gomock.Any(), orderID).Return(nil, nil)
	te.autograph.EXPECT().OrderParentIDs(gomock.Any(), orderID).Return(nil, nil)
	te.autograph.EXPECT().OrderCurrencies(gomock.Any(), orderID).Return(nil, nil)
	te.autograph.EXPECT().OrderCollectionIDs(gomock.Any(), orderID).
		Return([][]*big.Int{{big.NewInt(999)}}, nil)
	te.autograph.EXPECT().OrderMintedTokens(gomock.Any(), orderID).
		Return([][]*big.Int{}, nil)

	// Unknown collection: no gallery lookup, no refresh
	te.store.EXPECT().GetCollection(gomock.Any(), "999").Return(nil, nil)
	te.store.EXPECT().
		SaveOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *schema.Order) error {
			assert.Equal(t, `[["999"]]`, order.CollectionIDs)
			assert.Equal(t, `[]`, order.MintedTokens)
			return nil
		})
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestPublicationConnectedAccumulatesParallelLists(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	first := makeEvent(t, domain.KindPublicationConnected, domain.PublicationConnectedPayload{
		PubID:        "11",
		ProfileID:    "21",
		CollectionID: "101",
		GalleryID:    7,
	})

	state := &schema.Collection{ID: "101", CollectionID: "101"}

	te.store.EXPECT().GetCollection(gomock.Any(), "101").Return(state, nil)
	te.store.EXPECT().
		SaveCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collection *schema.Collection) error {
			assert.Equal(t, datatypes.JSONSlice[string]{"21"}, collection.ProfileIDs)
			assert.Equal(t, datatypes.JSONSlice[string]{"11"}, collection.PubIDs)
			state = collection
			return nil
		})
	te.expectAudit(t, first)
	require.NoError(t, te.engine.Handle(ctx, first))

	second := makeEvent(t, domain.KindPublicationConnected, domain.PublicationConnectedPayload{
		PubID:        "12",
		ProfileID:    "22",
		CollectionID: "101",
		GalleryID:    7,
	})
	second.LogIndex = 4

	te.store.EXPECT().GetCollection(gomock.Any(), "101").Return(state, nil)
	te.store.EXPECT().
		SaveCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, collection *schema.Collection) error {
			assert.Equal(t, datatypes.JSONSlice[string]{"21", "22"}, collection.ProfileIDs)
			assert.Equal(t, datatypes.JSONSlice[string]{"11", "12"}, collection.PubIDs)
			return nil
		})
	te.expectAudit(t, second)
	require.NoError(t, te.engine.Handle(ctx, second))
}

func TestPublicationConnectedUnknownCollection(t *testing.T) {
	te := newTestEngine(t)
	event := makeEvent(t, domain.KindPublicationConnected, domain.PublicationConnectedPayload{
		PubID:        "11",
		ProfileID:    "21",
		CollectionID: "101",
		GalleryID:    7,
	})

	te.store.EXPECT().GetCollection(gomock.Any(), "101").Return(nil, nil)
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(context.Background(), event))
}

func TestAutographCreatedFetchesInnerPages(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindAutographCreated, domain.AutographCreatedPayload{
		URI:    "ipfs://site/QmAutograph",
		Amount: "50",
	})

	te.autograph.EXPECT().AutographPrice(gomock.Any()).Return(big.NewInt(777), nil)
	te.autograph.EXPECT().AutographPageCount(gomock.Any()).Return(uint32(3), nil)
	te.autograph.EXPECT().AutographAcceptedTokens(gomock.Any()).
		Return([]common.Address{common.HexToAddress(testDesigner)}, nil)
	te.autograph.EXPECT().AutographProfileID(gomock.Any()).Return(big.NewInt(1), nil)
	te.autograph.EXPECT().AutographPubID(gomock.Any()).Return(big.NewInt(2), nil)
	te.autograph.EXPECT().AutographDesigner(gomock.Any()).
		Return(common.HexToAddress(testDesigner), nil)
	te.autograph.EXPECT().AutographMinted(gomock.Any()).
		Return([]*big.Int{big.NewInt(1)}, nil)
	te.autograph.EXPECT().AutographPage(gomock.Any(), big.NewInt(1)).Return("page one", nil)
	te.autograph.EXPECT().AutographPage(gomock.Any(), big.NewInt(2)).Return("page two", nil)

	te.store.EXPECT().
		SaveAutograph(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, autograph *schema.Autograph) error {
			assert.Equal(t, event.Key(), autograph.ID)
			assert.Equal(t, uint32(3), autograph.PageCount)
			assert.Equal(t, datatypes.JSONSlice[string]{"page one", "page two"}, autograph.Pages)
			assert.Equal(t, "777", autograph.Price)
			assert.Equal(t, "50", autograph.Amount)
			return nil
		})
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(ctx, event))
}

func TestAutographCreatedZeroPages(t *testing.T) {
	te := newTestEngine(t)
	event := makeEvent(t, domain.KindAutographCreated, domain.AutographCreatedPayload{
		URI:    "ipfs://site/QmAutograph",
		Amount: "50",
	})

	te.autograph.EXPECT().AutographPrice(gomock.Any()).Return(big.NewInt(777), nil)
	te.autograph.EXPECT().AutographPageCount(gomock.Any()).Return(uint32(0), nil)
	te.autograph.EXPECT().AutographAcceptedTokens(gomock.Any()).Return(nil, nil)
	te.autograph.EXPECT().AutographProfileID(gomock.Any()).Return(big.NewInt(0), nil)
	te.autograph.EXPECT().AutographPubID(gomock.Any()).Return(big.NewInt(0), nil)
	te.autograph.EXPECT().AutographDesigner(gomock.Any()).Return(common.Address{}, nil)
	te.autograph.EXPECT().AutographMinted(gomock.Any()).Return(nil, nil)

	te.store.EXPECT().
		SaveAutograph(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, autograph *schema.Autograph) error {
			assert.Empty(t, autograph.Pages)
			return nil
		})
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(context.Background(), event))
}

func TestCurrencyAdded(t *testing.T) {
	te := newTestEngine(t)
	event := makeEvent(t, domain.KindCurrencyAdded, domain.CurrencyAddedPayload{
		Currency: "0x000000000000000000000000000000000000000a",
	})

	te.splits.EXPECT().
		WeiByCurrency(gomock.Any(), common.HexToAddress("0x000000000000000000000000000000000000000a")).
		Return(big.NewInt(1000000), nil)
	te.store.EXPECT().
		SaveCurrency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, currency *schema.Currency) error {
			assert.Equal(t, "10", currency.ID)
			assert.Equal(t, "1000000", currency.Wei)
			assert.Nil(t, currency.Rate)
			return nil
		})
	te.expectAudit(t, event)

	require.NoError(t, te.engine.Handle(context.Background(), event))
}

func TestOracleUpdated(t *testing.T) {
	t.Run("registered currency gets the rate", func(t *testing.T) {
		te := newTestEngine(t)
		event := makeEvent(t, domain.KindOracleUpdated, domain.OracleUpdatedPayload{
			Currency: "0x000000000000000000000000000000000000000a",
			Rate:     "99",
		})

		te.store.EXPECT().GetCurrency(gomock.Any(), "10").Return(&schema.Currency{
			ID:       "10",
			Currency: "0x000000000000000000000000000000000000000a",
			Wei:      "1000000",
		}, nil)
		te.splits.EXPECT().
			RateByCurrency(gomock.Any(), common.HexToAddress("0x000000000000000000000000000000000000000a")).
			Return(big.NewInt(123), nil)
		te.store.EXPECT().
			SaveCurrency(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, currency *schema.Currency) error {
				require.NotNil(t, currency.Rate)
				assert.Equal(t, "123", *currency.Rate)
				return nil
			})
		te.expectAudit(t, event)

		require.NoError(t, te.engine.Handle(context.Background(), event))
	})

	t.Run("unregistered currency is a no-op", func(t *testing.T) {
		te := newTestEngine(t)
		event := makeEvent(t, domain.KindOracleUpdated, domain.OracleUpdatedPayload{
			Currency: "0x000000000000000000000000000000000000000a",
			Rate:     "99",
		})

		te.store.EXPECT().GetCurrency(gomock.Any(), "10").Return(nil, nil)
		te.expectAudit(t, event)

		require.NoError(t, te.engine.Handle(context.Background(), event))
	})
}

func TestFlatEventsAuditOnly(t *testing.T) {
	flatEvents := []struct {
		kind    domain.EventKind
		payload interface{}
	}{
		{domain.KindCollectionTokenMinted, domain.CollectionTokenMintedPayload{
			TokenIDs:      []string{"1", "2"},
			CollectionIDs: []string{"101", "101"},
			GalleryIDs:    []uint32{7, 7},
		}},
		{domain.KindAutographTokensMinted, domain.AutographTokensMintedPayload{Amount: "3"}},
		{domain.KindCurrencyRemoved, domain.CurrencyRemovedPayload{Currency: "0x0a"}},
		{domain.KindDesignerSplitSet, domain.DesignerSplitSetPayload{
			Designer: testDesigner, PrintType: 1, Split: "100",
		}},
		{domain.KindFulfillerBaseSet, domain.FulfillerBaseSetPayload{
			Fulfiller: testDesigner, PrintType: 1, Split: "100",
		}},
		{domain.KindFulfillerSplitSet, domain.FulfillerSplitSetPayload{
			Fulfiller: testDesigner, PrintType: 1, Split: "100",
		}},
		{domain.KindTreasurySplitSet, domain.TreasurySplitSetPayload{
			Treasury: testDesigner, PrintType: 1, Split: "100",
		}},
	}

	for _, tt := range flatEvents {
		t.Run(string(tt.kind), func(t *testing.T) {
			te := newTestEngine(t)
			event := makeEvent(t, tt.kind, tt.payload)
			te.expectAudit(t, event)
			require.NoError(t, te.engine.Handle(context.Background(), event))
		})
	}
}

func TestContractReadFailureWritesNothing(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	event := makeEvent(t, domain.KindGalleryCreated, domain.GalleryCreatedPayload{
		CollectionIDs: []string{"101"},
		Designer:      testDesigner,
		GalleryID:     7,
	})

	id := big.NewInt(101)
	te.autograph.EXPECT().
		CollectionAcceptedTokens(gomock.Any(), id, uint32(7)).
		Return(nil, nil)
	te.autograph.EXPECT().
		CollectionPrice(gomock.Any(), id, uint32(7)).
		Return(nil, errors.New("execution reverted"))
	// No SaveCollection, SaveGallery or SaveEventRecord expectations:
	// a failed read must leave the database untouched

	assert.Error(t, te.engine.Handle(ctx, event))
}

func TestHandleRejectsInvalidEvents(t *testing.T) {
	te := newTestEngine(t)

	assert.Error(t, te.engine.Handle(context.Background(), &domain.Event{
		Kind: "bogus_kind", TxHash: "0x1", BlockNumber: 1, Payload: []byte("{}"),
	}))

	assert.Error(t, te.engine.Handle(context.Background(), &domain.Event{
		Kind: domain.KindGalleryCreated, TxHash: "", BlockNumber: 1, Payload: []byte("{}"),
	}))
}

func TestHandleRejectsMalformedPayload(t *testing.T) {
	te := newTestEngine(t)

	event := &domain.Event{
		Kind:        domain.KindGalleryCreated,
		TxHash:      "0xdeadbeef",
		LogIndex:    1,
		BlockNumber: 100,
		Payload:     []byte(`{"collection_ids": "not-an-array"}`),
	}

	assert.Error(t, te.engine.Handle(context.Background(), event))
}
