package blockchain

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/divaprotocol/diva-deploy/internal/adapters/blockchain/nodetest"
	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(t *testing.T, node *nodetest.Node) *ReaderAdapter {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	t.Cleanup(node.Close)
	reader := NewReaderAdapterWithDialer(node.Dialer(), time.Second, log)
	require.NoError(t, reader.Connect(context.Background(), "inproc"))
	t.Cleanup(reader.Close)
	return reader
}

func TestReaderAdapter_TransactionByHash(t *testing.T) {
	node := nodetest.New().
		AddTransaction("0xmined", nodetest.Hex("0x64")).
		AddTransaction("0xzero", nodetest.Hex("0x0")).
		AddTransaction("0xpending", nil)
	reader := newTestReader(t, node)
	ctx := context.Background()

	t.Run("unknown hash", func(t *testing.T) {
		tx, err := reader.TransactionByHash(ctx, "0xABC")
		require.NoError(t, err)
		assert.Nil(t, tx)
	})

	t.Run("mined", func(t *testing.T) {
		tx, err := reader.TransactionByHash(ctx, "0xmined")
		require.NoError(t, err)
		require.NotNil(t, tx)
		assert.Equal(t, big.NewInt(100), tx.BlockNumber)
		assert.Equal(t, "0xmined", tx.Hash)
		assert.Equal(t, uint64(1), tx.Nonce)
		require.NotNil(t, tx.From)
		assert.Equal(t, common.HexToAddress("0x2ded74483a067d8040e6c08a013007a929312e82"), *tx.From)
	})

	t.Run("block zero stays distinct from null", func(t *testing.T) {
		zero, err := reader.TransactionByHash(ctx, "0xzero")
		require.NoError(t, err)
		require.NotNil(t, zero.BlockNumber)
		assert.Equal(t, 0, zero.BlockNumber.Sign())

		pending, err := reader.TransactionByHash(ctx, "0xpending")
		require.NoError(t, err)
		assert.Nil(t, pending.BlockNumber)
	})
}

func TestReaderAdapter_TransactionReceipt(t *testing.T) {
	node := nodetest.New().
		AddReceipt("0xok", "0x1", "0x64").
		AddReceipt("0xreverted", "0x0", "0x65")
	reader := newTestReader(t, node)
	ctx := context.Background()

	ok, err := reader.TransactionReceipt(ctx, "0xok")
	require.NoError(t, err)
	assert.True(t, ok.Succeeded())
	assert.Equal(t, uint64(21000), ok.GasUsed)
	assert.Equal(t, big.NewInt(100), ok.BlockNumber)

	reverted, err := reader.TransactionReceipt(ctx, "0xreverted")
	require.NoError(t, err)
	assert.False(t, reverted.Succeeded())

	missing, err := reader.TransactionReceipt(ctx, "0xnone")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, 3, node.ReceiptCalls)
}

func TestReaderAdapter_NotConnected(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reader := NewReaderAdapter(&config.RuntimeConfig{}, log)

	_, err := reader.TransactionByHash(context.Background(), "0x1")
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	_, err = reader.TransactionReceipt(context.Background(), "0x1")
	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestReaderAdapter_UnreachableNode(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reader := NewReaderAdapter(&config.RuntimeConfig{Timeout: 2 * time.Second}, log)

	// Port 1 on loopback refuses connections; the HTTP dial itself is lazy
	require.NoError(t, reader.Connect(context.Background(), "http://127.0.0.1:1"))
	defer reader.Close()

	_, err := reader.TransactionByHash(context.Background(), "0x1")
	assert.Error(t, err)
}

func TestReaderAdapter_InvalidURL(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reader := NewReaderAdapter(&config.RuntimeConfig{}, log)

	err := reader.Connect(context.Background(), "ftp://node")
	assert.Error(t, err)
}

func TestReaderAdapter_NodeClose(t *testing.T) {
	node := nodetest.New().AddTransaction("0xmined", nodetest.Hex("0x64"))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		reader := NewReaderAdapterWithDialer(node.Dialer(), time.Second, log)
		require.NoError(t, reader.Connect(ctx, "inproc"))
		tx, err := reader.TransactionByHash(ctx, "0xmined")
		require.NoError(t, err)
		require.NotNil(t, tx)
		reader.Close()
		node.Close()
	}

	assert.Equal(t, 2, node.Dials)
	assert.NotPanics(t, node.Close)
}
