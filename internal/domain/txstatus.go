package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TxState is the resolved status of a transaction lookup
type TxState string

const (
	TxStateNotFound  TxState = "NotFound"
	TxStatePending   TxState = "Pending"
	TxStateSucceeded TxState = "Succeeded"
	TxStateFailed    TxState = "Failed"
)

func (s TxState) String() string {
	return string(s)
}

// PendingSentinel selects how a transaction's block number signals "not yet mined"
type PendingSentinel string

const (
	// PendingSentinelZero treats a block number of exactly 0 as pending.
	// A missing block number is pending as well.
	PendingSentinelZero PendingSentinel = "zero"

	// PendingSentinelNull treats only a missing block number as pending,
	// so block 0 counts as mined.
	PendingSentinelNull PendingSentinel = "null"
)

// ParsePendingSentinel parses a sentinel name, defaulting to PendingSentinelZero for ""
func ParsePendingSentinel(s string) (PendingSentinel, error) {
	switch PendingSentinel(strings.ToLower(strings.TrimSpace(s))) {
	case "", PendingSentinelZero:
		return PendingSentinelZero, nil
	case PendingSentinelNull:
		return PendingSentinelNull, nil
	default:
		return "", &ConfigError{Key: "pending_sentinel", Reason: "must be one of: zero, null (got " + s + ")"}
	}
}

// IsPending reports whether a transaction with the given block number is still unmined
func (p PendingSentinel) IsPending(blockNumber *big.Int) bool {
	if blockNumber == nil {
		return true
	}
	if p == PendingSentinelNull {
		return false
	}
	return blockNumber.Sign() == 0
}

// TxRecord is the subset of a node's transaction object the checker looks at
type TxRecord struct {
	Hash        string          `json:"hash"`
	From        *common.Address `json:"from,omitempty"`
	To          *common.Address `json:"to,omitempty"`
	Nonce       uint64          `json:"nonce"`
	Value       *big.Int        `json:"value,omitempty"`
	BlockNumber *big.Int        `json:"blockNumber"` // nil while unmined
}

// ReceiptRecord is the subset of a transaction receipt the checker looks at
type ReceiptRecord struct {
	Status      uint64   `json:"status"`
	BlockNumber *big.Int `json:"blockNumber,omitempty"`
	GasUsed     uint64   `json:"gasUsed"`
}

// Succeeded reports whether the receipt carries the success status code
func (r *ReceiptRecord) Succeeded() bool {
	return r.Status == types.ReceiptStatusSuccessful
}

// TxStatusReport is the outcome of a single status inquiry
type TxStatusReport struct {
	Hash        string         `json:"hash"`
	State       TxState        `json:"state"`
	Transaction *TxRecord      `json:"transaction,omitempty"`
	Receipt     *ReceiptRecord `json:"receipt,omitempty"`
}
