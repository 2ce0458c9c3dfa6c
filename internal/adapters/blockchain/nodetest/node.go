// Package nodetest provides an in-process JSON-RPC ledger node for tests.
package nodetest

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/rpc"
)

// Node serves eth_getTransactionByHash and eth_getTransactionReceipt from
// fixed tables and counts every call.
type Node struct {
	mu           sync.Mutex
	server       *rpc.Server
	transactions map[string]map[string]any
	receipts     map[string]map[string]any

	TxCalls      int
	ReceiptCalls int
	Dials        int
}

// New creates an empty node
func New() *Node {
	return &Node{
		transactions: make(map[string]map[string]any),
		receipts:     make(map[string]map[string]any),
	}
}

// AddTransaction registers a transaction. blockNumber nil encodes as JSON null.
func (n *Node) AddTransaction(hash string, blockNumber *string) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()

	tx := map[string]any{
		"hash":        hash,
		"from":        "0x2ded74483a067d8040e6c08a013007a929312e82",
		"to":          "0x45656c02aae856443717c34159870b90d1288203",
		"nonce":       "0x1",
		"value":       "0x0",
		"blockNumber": nil,
	}
	if blockNumber != nil {
		tx["blockNumber"] = *blockNumber
	}
	n.transactions[hash] = tx
	return n
}

// AddReceipt registers a receipt with the given hex status (e.g. "0x1")
func (n *Node) AddReceipt(hash, status, blockNumber string) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.receipts[hash] = map[string]any{
		"transactionHash": hash,
		"status":          status,
		"blockNumber":     blockNumber,
		"gasUsed":         "0x5208",
	}
	return n
}

// Dialer returns a dial function connecting to the node's in-process server.
// All dials share one server, stopped by Close.
func (n *Node) Dialer() func(ctx context.Context, rpcURL string) (*rpc.Client, error) {
	return func(ctx context.Context, rpcURL string) (*rpc.Client, error) {
		n.mu.Lock()
		defer n.mu.Unlock()

		if n.server == nil {
			server := rpc.NewServer()
			if err := server.RegisterName("eth", &ethService{node: n}); err != nil {
				return nil, err
			}
			n.server = server
		}
		n.Dials++
		return rpc.DialInProc(n.server), nil
	}
}

// Close stops the in-process server and its client connections
func (n *Node) Close() {
	n.mu.Lock()
	server := n.server
	n.server = nil
	n.mu.Unlock()

	if server != nil {
		server.Stop()
	}
}

// Hex returns a pointer to s, for AddTransaction block numbers
func Hex(s string) *string {
	return &s
}

type ethService struct {
	node *Node
}

func (s *ethService) GetTransactionByHash(hash string) (map[string]any, error) {
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	s.node.TxCalls++
	return s.node.transactions[hash], nil
}

func (s *ethService) GetTransactionReceipt(hash string) (map[string]any, error) {
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	s.node.ReceiptCalls++
	return s.node.receipts[hash], nil
}
