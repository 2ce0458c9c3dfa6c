package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
)

// TxStatusUsage is the usage line shown when no hash is given
const TxStatusUsage = "diva tx-status <transactionHash>"

// CheckTxStatusParams contains parameters for a status inquiry
type CheckTxStatusParams struct {
	Hash string
}

// CheckTxStatus resolves a transaction hash to NotFound, Pending, Succeeded or Failed
type CheckTxStatus struct {
	rpcURL   string
	sentinel domain.PendingSentinel
	reader   TransactionReader
	progress ProgressSink
	log      *slog.Logger
}

// NewCheckTxStatus creates a new CheckTxStatus use case
func NewCheckTxStatus(
	cfg *config.RuntimeConfig,
	reader TransactionReader,
	progress ProgressSink,
	log *slog.Logger,
) *CheckTxStatus {
	return &CheckTxStatus{
		rpcURL:   cfg.RPCURL,
		sentinel: cfg.PendingSentinel,
		reader:   reader,
		progress: progress,
		log:      log.With("component", "CheckTxStatus"),
	}
}

// Run executes the use case. At most two node queries are made, one after the other.
func (uc *CheckTxStatus) Run(ctx context.Context, params CheckTxStatusParams) (*domain.TxStatusReport, error) {
	hash := strings.TrimSpace(params.Hash)
	if hash == "" {
		return nil, &domain.UsageError{Usage: TxStatusUsage, Message: "transaction hash is required"}
	}

	if uc.rpcURL == "" {
		return nil, &domain.ConfigError{
			Key:    "rpc_url",
			Reason: fmt.Sprintf("no node endpoint configured (set %s, DIVA_RPC_URL, --rpc-url or --network)", config.LegacyRPCEnvVar),
		}
	}

	if err := uc.reader.Connect(ctx, uc.rpcURL); err != nil {
		return nil, fmt.Errorf("failed to connect to node: %w", err)
	}
	defer uc.reader.Close()
	defer uc.progress.Done()

	report := &domain.TxStatusReport{Hash: hash}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "transaction", Current: 1, Total: 2, Message: "Fetching transaction", Spinner: true})
	uc.log.Debug("fetching transaction", "hash", hash)

	tx, err := uc.reader.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", hash, err)
	}
	if tx == nil {
		report.State = domain.TxStateNotFound
		return report, nil
	}
	report.Transaction = tx

	if uc.sentinel.IsPending(tx.BlockNumber) {
		uc.log.Debug("transaction not mined", "hash", hash, "blockNumber", tx.BlockNumber, "sentinel", uc.sentinel)
		report.State = domain.TxStatePending
		return report, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "receipt", Current: 2, Total: 2, Message: "Fetching receipt", Spinner: true})
	uc.log.Debug("fetching receipt", "hash", hash, "blockNumber", tx.BlockNumber)

	receipt, err := uc.reader.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", hash, err)
	}
	if receipt == nil {
		return nil, fmt.Errorf("%s: %w", hash, domain.ErrReceiptMissing)
	}
	report.Receipt = receipt

	if receipt.Succeeded() {
		report.State = domain.TxStateSucceeded
	} else {
		report.State = domain.TxStateFailed
	}

	return report, nil
}
