package chain

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"chaintrace/internal/domain/service"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
)

type scriptedFetcher struct {
	responses []func() (*types.Receipt, error)
	calls     int
}

func (f *scriptedFetcher) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	idx := f.calls
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.calls++

	return f.responses[idx]()
}

func receipt(status uint64) func() (*types.Receipt, error) {
	return func() (*types.Receipt, error) {
		return &types.Receipt{Status: status, BlockNumber: big.NewInt(42)}, nil
	}
}

func notFound() (*types.Receipt, error) {
	return nil, ethereum.NotFound
}

func newTestVerifier(f receiptFetcher) *receiptVerifier {
	v := newReceiptVerifier(f, 500*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	v.initialInterval = 5 * time.Millisecond

	return v
}

var validHash = "0x" + strings.Repeat("ab", 32)

func TestReceiptVerifier_VerifyTransaction(t *testing.T) {
	tests := []struct {
		name      string
		hash      string
		responses []func() (*types.Receipt, error)
		wantErr   bool
		wantCalls int
	}{
		{name: "mined successfully", hash: validHash, responses: []func() (*types.Receipt, error){receipt(types.ReceiptStatusSuccessful)}, wantCalls: 1},
		{name: "pending then mined", hash: validHash, responses: []func() (*types.Receipt, error){notFound, receipt(types.ReceiptStatusSuccessful)}, wantCalls: 2},
		{name: "reverted", hash: validHash, responses: []func() (*types.Receipt, error){receipt(types.ReceiptStatusFailed)}, wantErr: true, wantCalls: 1},
		{name: "never mined", hash: validHash, responses: []func() (*types.Receipt, error){notFound}, wantErr: true},
		{name: "malformed hash", hash: "0xTX1", wantErr: true, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &scriptedFetcher{responses: tt.responses}
			err := newTestVerifier(fetcher).VerifyTransaction(context.Background(), tt.hash)

			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrTransactionNotConfirmed)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantCalls > 0 || tt.hash != validHash {
				assert.Equal(t, tt.wantCalls, fetcher.calls)
			}
		})
	}
}
