package tools

import (
	"context"
	"errors"

	"tokenbot/wallet"
)

// WalletTool reports the agent's own wallet details.
type WalletTool struct {
	store *wallet.Store
}

// NewWalletTool creates the wallet details tool backed by the given store.
func NewWalletTool(store *wallet.Store) *WalletTool {
	return &WalletTool{store: store}
}

func (t *WalletTool) Name() string {
	return "get_wallet_details"
}

func (t *WalletTool) Description() string {
	return "Get the agent's own wallet address and network. Use this when the user asks about your wallet."
}

func (t *WalletTool) Parameters() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
		"required":   []string{},
	}
}

func (t *WalletTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	rec, err := t.store.Load()
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("no wallet configured; set WALLET_ADDRESS")
	}
	return "Wallet address: " + rec.Address + " (network: " + rec.Network + ")", nil
}
