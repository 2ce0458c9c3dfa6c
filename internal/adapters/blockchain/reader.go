package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// rpcTransaction is the part of eth_getTransactionByHash the checker needs.
// blockNumber is kept raw so that null and 0x0 stay distinguishable.
type rpcTransaction struct {
	Hash        string          `json:"hash"`
	From        *common.Address `json:"from"`
	To          *common.Address `json:"to"`
	Nonce       hexutil.Uint64  `json:"nonce"`
	Value       *hexutil.Big    `json:"value"`
	BlockNumber *hexutil.Big    `json:"blockNumber"`
}

type rpcReceipt struct {
	Status      hexutil.Uint64 `json:"status"`
	BlockNumber *hexutil.Big   `json:"blockNumber"`
	GasUsed     hexutil.Uint64 `json:"gasUsed"`
}

// Dialer opens a JSON-RPC client for an endpoint
type Dialer func(ctx context.Context, rpcURL string) (*rpc.Client, error)

// ReaderAdapter implements the TransactionReader interface over JSON-RPC
type ReaderAdapter struct {
	dial    Dialer
	client  *rpc.Client
	timeout time.Duration
	log     *slog.Logger
}

// NewReaderAdapter creates a new reader adapter
func NewReaderAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ReaderAdapter {
	return NewReaderAdapterWithDialer(rpc.DialContext, cfg.Timeout, log)
}

// NewReaderAdapterWithDialer creates a reader that connects through dial
func NewReaderAdapterWithDialer(dial Dialer, timeout time.Duration, log *slog.Logger) *ReaderAdapter {
	return &ReaderAdapter{
		dial:    dial,
		timeout: timeout,
		log:     log.With("component", "ReaderAdapter"),
	}
}

// Connect dials the node. HTTP endpoints are dialled lazily, so an unreachable
// node surfaces on the first query.
func (r *ReaderAdapter) Connect(ctx context.Context, rpcURL string) error {
	r.Close()

	client, err := r.dial(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}
	r.client = client
	r.log.Debug("connected", "url", rpcURL)

	return nil
}

// TransactionByHash fetches a transaction; nil, nil when the node doesn't know it
func (r *ReaderAdapter) TransactionByHash(ctx context.Context, hash string) (*domain.TxRecord, error) {
	if r.client == nil {
		return nil, domain.ErrNotConnected
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var tx *rpcTransaction
	if err := r.client.CallContext(ctx, &tx, "eth_getTransactionByHash", hash); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}

	record := &domain.TxRecord{
		Hash:  tx.Hash,
		From:  tx.From,
		To:    tx.To,
		Nonce: uint64(tx.Nonce),
	}
	if tx.Value != nil {
		record.Value = tx.Value.ToInt()
	}
	if tx.BlockNumber != nil {
		record.BlockNumber = tx.BlockNumber.ToInt()
	}

	return record, nil
}

// TransactionReceipt fetches a receipt; nil, nil when none exists yet
func (r *ReaderAdapter) TransactionReceipt(ctx context.Context, hash string) (*domain.ReceiptRecord, error) {
	if r.client == nil {
		return nil, domain.ErrNotConnected
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var receipt *rpcReceipt
	if err := r.client.CallContext(ctx, &receipt, "eth_getTransactionReceipt", hash); err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}

	record := &domain.ReceiptRecord{
		Status:  uint64(receipt.Status),
		GasUsed: uint64(receipt.GasUsed),
	}
	if receipt.BlockNumber != nil {
		record.BlockNumber = receipt.BlockNumber.ToInt()
	}

	return record, nil
}

// Close releases the client
func (r *ReaderAdapter) Close() {
	if r.client != nil {
		r.client.Close()
		r.client = nil
	}
}

func (r *ReaderAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Ensure the adapter implements the interface
var _ usecase.TransactionReader = (*ReaderAdapter)(nil)
