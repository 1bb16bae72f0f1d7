package metadata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/config"
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

func newTestWorker(t *testing.T) (*Worker, *mocks.MockStore, *mocks.MockURIResolver, *mocks.MockHTTPClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockStore(ctrl)
	mockResolver := mocks.NewMockURIResolver(ctrl)
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	worker := NewWorker(
		mockStore,
		mockResolver,
		mockHTTP,
		NewParser(adapter.NewJSON()),
		adapter.NewJCS(),
		adapter.NewClock(),
		config.MetadataConfig{},
	)
	return worker, mockStore, mockResolver, mockHTTP
}

func digestOf(t *testing.T, canonical string) string {
	t.Helper()
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func TestProcessJobPersistsRecord(t *testing.T) {
	worker, mockStore, mockResolver, mockHTTP := newTestWorker(t)
	ctx := context.Background()

	mockResolver.EXPECT().
		Resolve(ctx, "QmHash").
		Return("https://ipfs.io/ipfs/QmHash", nil)
	mockHTTP.EXPECT().
		GetRaw(ctx, "https://ipfs.io/ipfs/QmHash").
		Return([]byte(`{"title":"Issue One"}`), nil)
	mockStore.EXPECT().
		SaveCollectionMetadata(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *schema.CollectionMetadata) error {
			assert.Equal(t, "QmHash", record.ID)
			assert.Equal(t, "Issue One", *record.Title)
			return nil
		})
	mockStore.EXPECT().
		CompleteMetadataJob(ctx, "QmHash", digestOf(t, `{"title":"Issue One"}`)).
		Return(nil)

	worker.processJob(ctx, schema.MetadataJob{Hash: "QmHash"})
}

func TestProcessJobFetchFailureStaysPending(t *testing.T) {
	worker, mockStore, mockResolver, mockHTTP := newTestWorker(t)
	ctx := context.Background()

	mockResolver.EXPECT().
		Resolve(ctx, "QmHash").
		Return("https://ipfs.io/ipfs/QmHash", nil)
	mockHTTP.EXPECT().
		GetRaw(ctx, gomock.Any()).
		Return(nil, errors.New("gateway timeout"))
	mockStore.EXPECT().
		TouchMetadataJob(ctx, "QmHash").
		Return(nil)

	worker.processJob(ctx, schema.MetadataJob{Hash: "QmHash"})
}

func TestProcessJobResolveFailureStaysPending(t *testing.T) {
	worker, mockStore, mockResolver, _ := newTestWorker(t)
	ctx := context.Background()

	mockResolver.EXPECT().
		Resolve(ctx, "QmHash").
		Return("", errors.New("no working gateway"))
	mockStore.EXPECT().
		TouchMetadataJob(ctx, "QmHash").
		Return(nil)

	worker.processJob(ctx, schema.MetadataJob{Hash: "QmHash"})
}

func TestProcessJobNonObjectCompletesWithoutRecord(t *testing.T) {
	worker, mockStore, mockResolver, mockHTTP := newTestWorker(t)
	ctx := context.Background()

	mockResolver.EXPECT().
		Resolve(ctx, "QmHash").
		Return("https://ipfs.io/ipfs/QmHash", nil)
	mockHTTP.EXPECT().
		GetRaw(ctx, gomock.Any()).
		Return([]byte(`["not","an","object"]`), nil)
	mockStore.EXPECT().
		CompleteMetadataJob(ctx, "QmHash", digestOf(t, `["not","an","object"]`)).
		Return(nil)

	worker.processJob(ctx, schema.MetadataJob{Hash: "QmHash"})
}

func TestProcessJobNonJSONCompletesWithoutDigest(t *testing.T) {
	worker, mockStore, mockResolver, mockHTTP := newTestWorker(t)
	ctx := context.Background()

	mockResolver.EXPECT().
		Resolve(ctx, "QmHash").
		Return("https://ipfs.io/ipfs/QmHash", nil)
	mockHTTP.EXPECT().
		GetRaw(ctx, gomock.Any()).
		Return([]byte("<html>not json</html>"), nil)
	mockStore.EXPECT().
		CompleteMetadataJob(ctx, "QmHash", "").
		Return(nil)

	worker.processJob(ctx, schema.MetadataJob{Hash: "QmHash"})
}

func TestProcessJobSaveFailureStaysPending(t *testing.T) {
	worker, mockStore, mockResolver, mockHTTP := newTestWorker(t)
	ctx := context.Background()

	mockResolver.EXPECT().
		Resolve(ctx, "QmHash").
		Return("https://ipfs.io/ipfs/QmHash", nil)
	mockHTTP.EXPECT().
		GetRaw(ctx, gomock.Any()).
		Return([]byte(`{"title":"Issue One"}`), nil)
	mockStore.EXPECT().
		SaveCollectionMetadata(ctx, gomock.Any()).
		Return(errors.New("connection reset"))
	mockStore.EXPECT().
		TouchMetadataJob(ctx, "QmHash").
		Return(nil)

	worker.processJob(ctx, schema.MetadataJob{Hash: "QmHash"})
}
