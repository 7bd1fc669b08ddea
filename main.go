package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode"

	"tokenbot/agent"
	"tokenbot/chains"
	"tokenbot/config"
	"tokenbot/quill"
	"tokenbot/tools"
	"tokenbot/wallet"
)

func main() {
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" || cfg.QuillAPIKey == "" {
		log.Fatal("GEMINI_API_KEY and QUILLAI_API_KEY environment variables are required")
	}

	// Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	// Persist the wallet record across runs
	store := wallet.NewStore(cfg.WalletDataFile)
	if rec, err := store.LoadOrInit(cfg.WalletAddress, cfg.WalletNetwork); err != nil {
		log.Printf("Wallet warning: %v", err)
	} else {
		log.Printf("Wallet: %s on %s", rec.Address, rec.Network)
	}

	// Set up tool registry
	registry := tools.NewRegistry()
	registry.Register(tools.NewTokenInfoTool(quill.NewClient(cfg.QuillAPIURL, cfg.QuillAPIKey)))
	registry.Register(&tools.ChainIDTool{})
	registry.Register(tools.NewWalletTool(store))
	registry.Register(&tools.NativeBalanceTool{})
	registry.Register(&tools.TokenBalanceTool{})
	registry.Register(&tools.GasPriceTool{})
	registry.Register(&tools.BlockNumberTool{})

	// Create agent
	chatAgent, err := agent.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, registry)
	if err != nil {
		log.Fatal(err)
	}
	defer chatAgent.Close()

	log.Printf("Registered tools: %d", len(registry.All()))

	if cfg.TelegramToken != "" {
		runTelegram(ctx, cfg, chatAgent)
		return
	}
	runChat(ctx, chatAgent, os.Stdin)
}

// runChat is the interactive chat loop. Input is read on a separate
// goroutine so context cancellation takes effect even while blocked on a
// read.
func runChat(ctx context.Context, chatAgent *agent.Agent, in io.Reader) {
	fmt.Println("Starting chatbot... Type 'exit' to end.")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Print("\nUser: ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Println("\nGoodbye!")
			return
		case text, ok := <-lines:
			if !ok {
				fmt.Println("\nGoodbye!")
				return
			}
			line = text
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			return
		}

		// A bare network name is answered directly, no model round-trip.
		if chain, ok := chains.ByName(input); ok {
			fmt.Printf("Chain ID for %s: %d\n", capitalize(chain.Name), chain.ID)
			continue
		}

		reply, err := chatAgent.Chat(ctx, input, func(chunk string) {
			fmt.Println(chunk)
			fmt.Println("-------------------")
		})
		if err != nil {
			log.Printf("Agent error: %v", err)
			fmt.Println("Sorry, I couldn't process that.")
			continue
		}
		fmt.Println(reply)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
