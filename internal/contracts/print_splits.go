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

const printSplitsABI = `[
	{"inputs":[{"name":"currency","type":"address"}],"name":"getWeiByCurrency","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"currency","type":"address"}],"name":"getRateByCurrency","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// PrintSplitsReader reads currency data from the PrintSplits contract
//
//go:generate mockgen -source=print_splits.go -destination=../mocks/print_splits.go -package=mocks -mock_names=PrintSplitsReader=MockPrintSplitsReader
type PrintSplitsReader interface {
	// WeiByCurrency returns the wei conversion base of a registered currency
	WeiByCurrency(ctx context.Context, currency common.Address) (*big.Int, error)
	// RateByCurrency returns the oracle rate of a registered currency
	RateByCurrency(ctx context.Context, currency common.Address) (*big.Int, error)
}

type printSplitsReader struct {
	address common.Address
	abi     abi.ABI
	client  adapter.EthClient
}

// NewPrintSplitsReader creates a reader pinned to the given contract address
func NewPrintSplitsReader(address string, client adapter.EthClient) (PrintSplitsReader, error) {
	parsed, err := abi.JSON(strings.NewReader(printSplitsABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse PrintSplits ABI: %w", err)
	}

	return &printSplitsReader{
		address: common.HexToAddress(address),
		abi:     parsed,
		client:  client,
	}, nil
}

func (r *printSplitsReader) call(ctx context.Context, out interface{}, method string, args ...interface{}) error {
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

func (r *printSplitsReader) WeiByCurrency(ctx context.Context, currency common.Address) (*big.Int, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getWeiByCurrency", currency); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *printSplitsReader) RateByCurrency(ctx context.Context, currency common.Address) (*big.Int, error) {
	var out *big.Int
	if err := r.call(ctx, &out, "getRateByCurrency", currency); err != nil {
		return nil, err
	}
	return out, nil
}
