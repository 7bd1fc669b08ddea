package tools

import (
	"context"
	"fmt"
	"strconv"

	"tokenbot/chains"
	"tokenbot/quill"
)

const tokenInfoDescription = `Fetch detailed information about a token using the Quill API. Provides comprehensive data including token metrics, market data, holder information, and security analysis. Use this when you need to analyze or verify token information on a specific blockchain.`

// TokenInfoTool analyzes a token contract via the Quill API and returns a
// formatted report.
type TokenInfoTool struct {
	client *quill.Client
}

// NewTokenInfoTool creates the token analysis tool backed by the given client.
func NewTokenInfoTool(client *quill.Client) *TokenInfoTool {
	return &TokenInfoTool{client: client}
}

func (t *TokenInfoTool) Name() string {
	return "get_token_info"
}

func (t *TokenInfoTool) Description() string {
	return tokenInfoDescription
}

func (t *TokenInfoTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chain_id": map[string]any{
				"type":        "string",
				"description": "The blockchain network where the token exists, as a name (e.g. 'ethereum') or numeric chain ID (e.g. '1')",
			},
			"token_address": map[string]any{
				"type":        "string",
				"description": "The contract address of the token to analyze",
			},
		},
		"required": []string{"chain_id", "token_address"},
	}
}

func (t *TokenInfoTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	address := stringArg(args, "token_address")
	if address == "" {
		return "", fmt.Errorf("token_address is required")
	}

	chainID, err := resolveChainID(stringArg(args, "chain_id"))
	if err != nil {
		return "", err
	}

	doc, err := t.client.TokenInformation(ctx, chainID, address)
	if err != nil {
		return "", err
	}

	return quill.FormatReport(doc), nil
}

// resolveChainID accepts either a network name or a numeric chain ID.
func resolveChainID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("chain_id is required")
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}
	if chain, ok := chains.ByName(raw); ok {
		return chain.ID, nil
	}
	return 0, fmt.Errorf("unknown chain %q (supported: %v)", raw, chains.Names())
}
