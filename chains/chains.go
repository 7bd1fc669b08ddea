// Package chains holds the static vocabulary of supported networks.
package chains

import (
	"os"
	"strings"
)

// Chain describes one supported EVM network.
type Chain struct {
	Name         string
	ID           int64
	NativeSymbol string
	RPCURL       string
}

var supported = []Chain{
	{Name: "ethereum", ID: 1, NativeSymbol: "ETH", RPCURL: "https://eth.llamarpc.com"},
	{Name: "bsc", ID: 56, NativeSymbol: "BNB", RPCURL: "https://bsc-dataseed.binance.org"},
	{Name: "polygon", ID: 137, NativeSymbol: "POL", RPCURL: "https://polygon-rpc.com"},
	{Name: "base", ID: 8453, NativeSymbol: "ETH", RPCURL: "https://mainnet.base.org"},
}

// ByName looks up a chain by network name, case-insensitively.
func ByName(name string) (Chain, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range supported {
		if c.Name == name {
			return c, true
		}
	}
	return Chain{}, false
}

// ByID looks up a chain by its numeric chain ID.
func ByID(id int64) (Chain, bool) {
	for _, c := range supported {
		if c.ID == id {
			return c, true
		}
	}
	return Chain{}, false
}

// All returns the supported chains in declaration order.
func All() []Chain {
	return supported
}

// Names returns the supported network names in declaration order.
func Names() []string {
	names := make([]string, len(supported))
	for i, c := range supported {
		names[i] = c.Name
	}
	return names
}

// Endpoint returns the RPC endpoint for the chain, preferring an
// RPC_<NAME> environment override over the built-in public default.
func (c Chain) Endpoint() string {
	if url := os.Getenv("RPC_" + strings.ToUpper(c.Name)); url != "" {
		return url
	}
	return c.RPCURL
}
