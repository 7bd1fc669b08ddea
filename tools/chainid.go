package tools

import (
	"context"
	"fmt"
	"strings"

	"tokenbot/chains"
)

// ChainIDTool resolves network names to numeric chain IDs.
type ChainIDTool struct{}

func (t *ChainIDTool) Name() string {
	return "get_chain_id"
}

func (t *ChainIDTool) Description() string {
	return "Look up the numeric chain ID for a blockchain network name (e.g. ethereum, bsc, polygon, base)."
}

func (t *ChainIDTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"network": map[string]any{
				"type":        "string",
				"description": "The network name to look up",
			},
		},
		"required": []string{"network"},
	}
}

func (t *ChainIDTool) Execute(_ context.Context, args map[string]any) (string, error) {
	name := stringArg(args, "network")
	chain, ok := chains.ByName(name)
	if !ok {
		return "", fmt.Errorf("unknown network %q (supported: %s)", name, strings.Join(chains.Names(), ", "))
	}
	return fmt.Sprintf("Chain ID for %s: %d", chain.Name, chain.ID), nil
}
