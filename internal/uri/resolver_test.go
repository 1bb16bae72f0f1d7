package uri_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/mocks"
	"github.com/autograph-quarterly/autograph-indexer/internal/uri"
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

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}
}

func notFoundResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusNotFound, Body: http.NoBody}
}

func TestResolveIPFSScheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: []string{"https://ipfs.io"},
	})

	httpClient.EXPECT().
		Head(gomock.Any(), "https://ipfs.io/ipfs/QmHash").
		Return(okResponse(), nil)

	url, err := resolver.Resolve(context.Background(), "ipfs://QmHash")
	require.NoError(t, err)
	assert.Equal(t, "https://ipfs.io/ipfs/QmHash", url)
}

func TestResolveBareCID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: []string{"https://ipfs.io"},
	})

	httpClient.EXPECT().
		Head(gomock.Any(), "https://ipfs.io/ipfs/QmHash").
		Return(okResponse(), nil)

	url, err := resolver.Resolve(context.Background(), "QmHash")
	require.NoError(t, err)
	assert.Equal(t, "https://ipfs.io/ipfs/QmHash", url)
}

func TestResolveFallsBackToWorkingGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: []string{"https://dead.example.com", "https://ipfs.io"},
	})

	httpClient.EXPECT().
		Head(gomock.Any(), "https://dead.example.com/ipfs/QmHash").
		Return(notFoundResponse(), nil)
	httpClient.EXPECT().
		Head(gomock.Any(), "https://ipfs.io/ipfs/QmHash").
		Return(okResponse(), nil)

	url, err := resolver.Resolve(context.Background(), "QmHash")
	require.NoError(t, err)
	assert.Equal(t, "https://ipfs.io/ipfs/QmHash", url)
}

func TestResolveNoWorkingGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: []string{"https://dead.example.com"},
	})

	httpClient.EXPECT().
		Head(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := resolver.Resolve(context.Background(), "QmHash")
	assert.Error(t, err)
}

func TestResolveHTTPPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: []string{"https://ipfs.io"},
	})

	url, err := resolver.Resolve(context.Background(), "https://example.com/metadata.json")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/metadata.json", url)
}

func TestResolveGatewayURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways: []string{"https://ipfs.io"},
	})

	httpClient.EXPECT().
		Head(gomock.Any(), "https://ipfs.io/ipfs/QmHash").
		Return(okResponse(), nil)

	url, err := resolver.Resolve(context.Background(), "https://other.example.com/ipfs/QmHash")
	require.NoError(t, err)
	assert.Equal(t, "https://ipfs.io/ipfs/QmHash", url)
}

func TestResolveNoGatewaysConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	resolver := uri.NewResolver(httpClient, &uri.Config{})

	_, err := resolver.Resolve(context.Background(), "ipfs://QmHash")
	assert.Error(t, err)
}
