package contracts

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autograph-quarterly/autograph-indexer/internal/mocks"
)

const testPrintSplits = "0x8402e22e4712acc9Bb91Fbec752881c4F9f21b1D"

func TestPrintSplitsReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	reader, err := NewPrintSplitsReader(testPrintSplits, client)
	require.NoError(t, err)

	currency := common.HexToAddress("0x000000000000000000000000000000000000000a")

	client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(packOutputs(t, printSplitsABI, "getWeiByCurrency", big.NewInt(1000000)), nil)

	wei, err := reader.WeiByCurrency(context.Background(), currency)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000000), wei)

	client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(packOutputs(t, printSplitsABI, "getRateByCurrency", big.NewInt(42)), nil)

	rate, err := reader.RateByCurrency(context.Background(), currency)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), rate)
}

func TestPrintSplitsReaderCallError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	reader, err := NewPrintSplitsReader(testPrintSplits, client)
	require.NoError(t, err)

	client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("connection refused"))

	_, err = reader.RateByCurrency(context.Background(), common.Address{})
	assert.ErrorContains(t, err, "getRateByCurrency")
}
