package tools

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Minimal ERC-20 ABI covering the read calls the balance tools need.
const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"}
]`

// NativeBalanceTool reports an address's native-currency balance.
type NativeBalanceTool struct{}

func (t *NativeBalanceTool) Name() string {
	return "get_native_balance"
}

func (t *NativeBalanceTool) Description() string {
	return "Get the native currency balance (ETH, BNB, POL) of an address on a blockchain network."
}

func (t *NativeBalanceTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chain": chainParameter(),
			"address": map[string]any{
				"type":        "string",
				"description": "The address to check, as a 0x-prefixed hex string",
			},
		},
		"required": []string{"address"},
	}
}

func (t *NativeBalanceTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	address := stringArg(args, "address")
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address: %q", address)
	}

	client, chain, err := dialChain(args)
	if err != nil {
		return "", err
	}
	defer client.Close()

	balance, err := client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return "", fmt.Errorf("fetching balance: %w", err)
	}

	return fmt.Sprintf("Balance of %s on %s: %s %s",
		address, chain.Name, formatUnits(balance, 18), chain.NativeSymbol), nil
}

// TokenBalanceTool reports an address's ERC-20 token balance.
type TokenBalanceTool struct{}

func (t *TokenBalanceTool) Name() string {
	return "get_token_balance"
}

func (t *TokenBalanceTool) Description() string {
	return "Get the ERC-20 token balance of a wallet address on a blockchain network."
}

func (t *TokenBalanceTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chain": chainParameter(),
			"token_address": map[string]any{
				"type":        "string",
				"description": "The token contract address",
			},
			"wallet_address": map[string]any{
				"type":        "string",
				"description": "The wallet address to check",
			},
		},
		"required": []string{"token_address", "wallet_address"},
	}
}

func (t *TokenBalanceTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	tokenAddress := stringArg(args, "token_address")
	walletAddress := stringArg(args, "wallet_address")
	if !common.IsHexAddress(tokenAddress) {
		return "", fmt.Errorf("invalid token address: %q", tokenAddress)
	}
	if !common.IsHexAddress(walletAddress) {
		return "", fmt.Errorf("invalid wallet address: %q", walletAddress)
	}

	client, chain, err := dialChain(args)
	if err != nil {
		return "", err
	}
	defer client.Close()

	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return "", fmt.Errorf("parsing ERC-20 ABI: %w", err)
	}

	token := common.HexToAddress(tokenAddress)
	wallet := common.HexToAddress(walletAddress)

	var balance *big.Int
	if err := callContract(ctx, client, parsed, token, "balanceOf", &balance, wallet); err != nil {
		return "", err
	}

	var symbol string
	if err := callContract(ctx, client, parsed, token, "symbol", &symbol); err != nil {
		symbol = "tokens"
	}

	var decimals uint8
	if err := callContract(ctx, client, parsed, token, "decimals", &decimals); err != nil {
		decimals = 18
	}

	return fmt.Sprintf("Balance of %s on %s: %s %s",
		walletAddress, chain.Name, formatUnits(balance, decimals), symbol), nil
}

// callContract packs a read-only call, executes it against the latest block,
// and unpacks the single result into out.
func callContract(ctx context.Context, client *ethclient.Client, parsed abi.ABI, to common.Address, method string, out any, params ...any) error {
	data, err := parsed.Pack(method, params...)
	if err != nil {
		return fmt.Errorf("packing %s call: %w", method, err)
	}

	result, err := client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}

	if err := parsed.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("unpacking %s result: %w", method, err)
	}
	return nil
}
