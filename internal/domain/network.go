package domain

// Network is a named RPC endpoint
type Network struct {
	Name   string `json:"name"`
	RPCURL string `json:"rpcUrl"`
}
