package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tokenbot/agent"
	"tokenbot/chains"
	"tokenbot/config"
)

// runTelegram serves the agent over Telegram instead of stdin.
func runTelegram(ctx context.Context, cfg *config.Config, chatAgent *agent.Agent) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot stopped")
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			go handleMessage(ctx, bot, chatAgent, cfg, update.Message)
		}
	}
}

func handleMessage(
	ctx context.Context,
	bot *tgbotapi.BotAPI,
	chatAgent *agent.Agent,
	cfg *config.Config,
	message *tgbotapi.Message,
) {
	log.Printf("[%s] %s", senderName(message), message.Text)

	var reply string

	switch message.Command() {
	case "start":
		reply = "👋 Hello! I'm an onchain assistant powered by " + cfg.GeminiModel + ".\n\n" +
			"I can:\n• Analyze a token's security and market data\n• Check native and ERC-20 balances\n• Look up gas prices, block numbers, and chain IDs\n\n" +
			"Supported networks: " + strings.Join(chains.Names(), ", ")

	case "help":
		reply = "Available commands:\n" +
			"/start - Start the bot\n" +
			"/help - Show this help message\n\n" +
			"Or just ask me things like:\n" +
			"• \"Is 0x6982... on ethereum a honeypot?\"\n" +
			"• \"What's the gas price on base?\"\n" +
			"• \"What's the chain ID for polygon?\""

	case "":
		// Not a command; a bare network name skips the model.
		if chain, ok := chains.ByName(strings.TrimSpace(message.Text)); ok {
			reply = fmt.Sprintf("Chain ID for %s: %d", capitalize(chain.Name), chain.ID)
			break
		}

		response, err := chatAgent.Chat(ctx, message.Text, nil)
		if err != nil {
			log.Printf("Agent error: %v", err)
			reply = "Sorry, I couldn't process that."
		} else {
			reply = response
		}

	default:
		reply = "Unknown command. Try /help"
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, reply)
	msg.ReplyToMessageID = message.MessageID

	if _, err := bot.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// senderName tolerates updates without a sender, e.g. channel posts.
func senderName(message *tgbotapi.Message) string {
	if message.From == nil {
		return "unknown"
	}
	return message.From.UserName
}
