package tools

import (
	"context"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"

	"tokenbot/chains"
)

// dialChain resolves a chain name from tool arguments and connects to its
// RPC endpoint. Callers must Close the returned client.
func dialChain(args map[string]any) (*ethclient.Client, chains.Chain, error) {
	name := stringArg(args, "chain")
	if name == "" {
		name = "ethereum"
	}
	chain, ok := chains.ByName(name)
	if !ok {
		return nil, chains.Chain{}, fmt.Errorf("unknown chain %q (supported: %v)", name, chains.Names())
	}

	client, err := ethclient.Dial(chain.Endpoint())
	if err != nil {
		return nil, chains.Chain{}, fmt.Errorf("connecting to %s: %w", chain.Name, err)
	}
	return client, chain, nil
}

// chainParameter is shared by the onchain tools.
func chainParameter() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Network name: ethereum, bsc, polygon, or base. Defaults to ethereum.",
	}
}

// formatUnits renders a raw integer amount scaled down by the given number
// of decimals.
func formatUnits(amount *big.Int, decimals uint8) string {
	scaled := new(big.Float).Quo(
		new(big.Float).SetInt(amount),
		big.NewFloat(math.Pow10(int(decimals))),
	)
	return scaled.Text('f', 6)
}

// GasPriceTool reports the suggested gas price on a chain.
type GasPriceTool struct{}

func (t *GasPriceTool) Name() string {
	return "get_gas_price"
}

func (t *GasPriceTool) Description() string {
	return "Get the current suggested gas price on a blockchain network, in gwei."
}

func (t *GasPriceTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chain": chainParameter(),
		},
		"required": []string{},
	}
}

func (t *GasPriceTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	client, chain, err := dialChain(args)
	if err != nil {
		return "", err
	}
	defer client.Close()

	price, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching gas price: %w", err)
	}

	gwei := new(big.Float).Quo(new(big.Float).SetInt(price), big.NewFloat(1e9))
	return fmt.Sprintf("Current gas price on %s: %s gwei", chain.Name, gwei.Text('f', 2)), nil
}

// BlockNumberTool reports the latest block number on a chain.
type BlockNumberTool struct{}

func (t *BlockNumberTool) Name() string {
	return "get_block_number"
}

func (t *BlockNumberTool) Description() string {
	return "Get the latest block number on a blockchain network."
}

func (t *BlockNumberTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chain": chainParameter(),
		},
		"required": []string{},
	}
}

func (t *BlockNumberTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	client, chain, err := dialChain(args)
	if err != nil {
		return "", err
	}
	defer client.Close()

	number, err := client.BlockNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching block number: %w", err)
	}

	return fmt.Sprintf("Latest block on %s: %d", chain.Name, number), nil
}
