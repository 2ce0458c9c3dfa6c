package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockReader is a counting test double for TransactionReader
type mockReader struct {
	tx         *domain.TxRecord
	txErr      error
	receipt    *domain.ReceiptRecord
	receiptErr error
	connectErr error

	connectCalls int
	txCalls      int
	receiptCalls int
	closeCalls   int
	connectedTo  string
}

func (m *mockReader) Connect(ctx context.Context, rpcURL string) error {
	m.connectCalls++
	m.connectedTo = rpcURL
	return m.connectErr
}

func (m *mockReader) TransactionByHash(ctx context.Context, hash string) (*domain.TxRecord, error) {
	m.txCalls++
	return m.tx, m.txErr
}

func (m *mockReader) TransactionReceipt(ctx context.Context, hash string) (*domain.ReceiptRecord, error) {
	m.receiptCalls++
	return m.receipt, m.receiptErr
}

func (m *mockReader) Close() {
	m.closeCalls++
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCheckTxStatus(reader TransactionReader, sentinel domain.PendingSentinel) *CheckTxStatus {
	cfg := &config.RuntimeConfig{RPCURL: "http://node:8545", PendingSentinel: sentinel}
	return NewCheckTxStatus(cfg, reader, NopProgress{}, discardLogger())
}

func TestCheckTxStatus_Classification(t *testing.T) {
	tests := []struct {
		name         string
		sentinel     domain.PendingSentinel
		tx           *domain.TxRecord
		receipt      *domain.ReceiptRecord
		wantState    domain.TxState
		wantReceipts int
	}{
		{
			name:         "no transaction record",
			sentinel:     domain.PendingSentinelZero,
			tx:           nil,
			receipt:      &domain.ReceiptRecord{Status: 1},
			wantState:    domain.TxStateNotFound,
			wantReceipts: 0,
		},
		{
			name:         "block number zero is pending regardless of receipt",
			sentinel:     domain.PendingSentinelZero,
			tx:           &domain.TxRecord{BlockNumber: big.NewInt(0)},
			receipt:      &domain.ReceiptRecord{Status: 1},
			wantState:    domain.TxStatePending,
			wantReceipts: 0,
		},
		{
			name:         "missing block number is pending",
			sentinel:     domain.PendingSentinelZero,
			tx:           &domain.TxRecord{},
			wantState:    domain.TxStatePending,
			wantReceipts: 0,
		},
		{
			name:         "mined with status 1",
			sentinel:     domain.PendingSentinelZero,
			tx:           &domain.TxRecord{BlockNumber: big.NewInt(100)},
			receipt:      &domain.ReceiptRecord{Status: 1},
			wantState:    domain.TxStateSucceeded,
			wantReceipts: 1,
		},
		{
			name:         "mined with status 0",
			sentinel:     domain.PendingSentinelZero,
			tx:           &domain.TxRecord{BlockNumber: big.NewInt(100)},
			receipt:      &domain.ReceiptRecord{Status: 0},
			wantState:    domain.TxStateFailed,
			wantReceipts: 1,
		},
		{
			name:         "mined with unexpected status code",
			sentinel:     domain.PendingSentinelZero,
			tx:           &domain.TxRecord{BlockNumber: big.NewInt(100)},
			receipt:      &domain.ReceiptRecord{Status: 7},
			wantState:    domain.TxStateFailed,
			wantReceipts: 1,
		},
		{
			name:         "null sentinel treats block zero as mined",
			sentinel:     domain.PendingSentinelNull,
			tx:           &domain.TxRecord{BlockNumber: big.NewInt(0)},
			receipt:      &domain.ReceiptRecord{Status: 1},
			wantState:    domain.TxStateSucceeded,
			wantReceipts: 1,
		},
		{
			name:         "null sentinel keeps missing block pending",
			sentinel:     domain.PendingSentinelNull,
			tx:           &domain.TxRecord{},
			wantState:    domain.TxStatePending,
			wantReceipts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &mockReader{tx: tt.tx, receipt: tt.receipt}
			uc := newTestCheckTxStatus(reader, tt.sentinel)

			report, err := uc.Run(context.Background(), CheckTxStatusParams{Hash: "0x123"})
			require.NoError(t, err)

			assert.Equal(t, tt.wantState, report.State)
			assert.Equal(t, "0x123", report.Hash)
			assert.Equal(t, 1, reader.txCalls)
			assert.Equal(t, tt.wantReceipts, reader.receiptCalls)
			assert.Equal(t, 1, reader.closeCalls)
			assert.Equal(t, "http://node:8545", reader.connectedTo)
		})
	}
}

func TestCheckTxStatus_MissingHash(t *testing.T) {
	reader := &mockReader{}
	uc := newTestCheckTxStatus(reader, domain.PendingSentinelZero)

	_, err := uc.Run(context.Background(), CheckTxStatusParams{Hash: "  "})
	require.Error(t, err)
	assert.True(t, domain.IsUsageError(err))
	assert.Zero(t, reader.connectCalls)
	assert.Zero(t, reader.txCalls)
}

func TestCheckTxStatus_MissingEndpoint(t *testing.T) {
	reader := &mockReader{}
	uc := NewCheckTxStatus(&config.RuntimeConfig{}, reader, NopProgress{}, discardLogger())

	_, err := uc.Run(context.Background(), CheckTxStatusParams{Hash: "0xABC"})
	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "rpc_url", cfgErr.Key)
	assert.Zero(t, reader.connectCalls)
}

func TestCheckTxStatus_NetworkFailures(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("connect", func(t *testing.T) {
		reader := &mockReader{connectErr: boom}
		_, err := newTestCheckTxStatus(reader, domain.PendingSentinelZero).Run(context.Background(), CheckTxStatusParams{Hash: "0x1"})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, reader.txCalls)
	})

	t.Run("transaction lookup", func(t *testing.T) {
		reader := &mockReader{txErr: boom}
		_, err := newTestCheckTxStatus(reader, domain.PendingSentinelZero).Run(context.Background(), CheckTxStatusParams{Hash: "0x1"})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, reader.receiptCalls)
	})

	t.Run("receipt lookup", func(t *testing.T) {
		reader := &mockReader{tx: &domain.TxRecord{BlockNumber: big.NewInt(5)}, receiptErr: boom}
		_, err := newTestCheckTxStatus(reader, domain.PendingSentinelZero).Run(context.Background(), CheckTxStatusParams{Hash: "0x1"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("mined transaction without receipt", func(t *testing.T) {
		reader := &mockReader{tx: &domain.TxRecord{BlockNumber: big.NewInt(5)}}
		_, err := newTestCheckTxStatus(reader, domain.PendingSentinelZero).Run(context.Background(), CheckTxStatusParams{Hash: "0x1"})
		assert.ErrorIs(t, err, domain.ErrReceiptMissing)
	})
}

func TestCheckTxStatus_Idempotent(t *testing.T) {
	reader := &mockReader{
		tx:      &domain.TxRecord{BlockNumber: big.NewInt(100)},
		receipt: &domain.ReceiptRecord{Status: 1},
	}
	uc := newTestCheckTxStatus(reader, domain.PendingSentinelZero)

	first, err := uc.Run(context.Background(), CheckTxStatusParams{Hash: "0x123"})
	require.NoError(t, err)
	second, err := uc.Run(context.Background(), CheckTxStatusParams{Hash: "0x123"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
