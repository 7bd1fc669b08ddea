// Package agent provides the agentic loop that connects the LLM to tools.
package agent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tokenbot/tools"
)

const maxToolCalls = 10 // Allow a few lookup rounds per user request

const systemPrompt = `You are a helpful agent that can look up onchain data and analyze tokens using your tools.

TOOLS:
- get_token_info: Full security and market analysis of a token contract
- get_chain_id: Numeric chain ID for a network name
- get_wallet_details: Your own wallet address and network
- get_native_balance: Native currency balance of any address
- get_token_balance: ERC-20 token balance of a wallet
- get_gas_price: Current gas price on a network
- get_block_number: Latest block on a network

Supported networks: ethereum, bsc, polygon, base.

When a user asks about a token's safety, legitimacy, or metrics, use get_token_info and return its report without restating it. If someone asks you to do something you cannot do with your tools, say so plainly. Be concise and helpful with your responses. Refrain from restating your tools' descriptions unless it is explicitly requested.`

// StreamFunc receives intermediate output (tool results and interim model
// text) while the agent works through a request.
type StreamFunc func(content string)

// sender is the chat-session surface the agent needs. *genai.ChatSession
// satisfies it.
type sender interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Agent handles conversations with the LLM and executes tool calls.
type Agent struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	session  sender
	registry *tools.Registry

	// The session appends to its history on every exchange, so only one
	// conversation turn may be in flight at a time.
	mu sync.Mutex
}

// New creates an Agent backed by the Gemini model with the registry's tools
// declared on it.
func New(ctx context.Context, apiKey, modelName string, registry *tools.Registry) (*Agent, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.Tools = registry.ToGeminiTools()

	return &Agent{
		client:   client,
		model:    model,
		session:  model.StartChat(),
		registry: registry,
	}, nil
}

// Close releases the underlying API client.
func (a *Agent) Close() {
	a.client.Close()
}

// Chat sends a message and resolves any tool calls in a loop. Intermediate
// output is forwarded to stream when non-nil; the final model text is
// returned.
func (a *Agent) Chat(ctx context.Context, userMessage string, stream StreamFunc) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	parts := []genai.Part{genai.Text(userMessage)}

	for i := 0; i < maxToolCalls; i++ {
		resp, err := a.session.SendMessage(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("calling Gemini: %w", err)
		}

		calls := functionCalls(resp)
		text := responseText(resp)

		if len(calls) == 0 {
			return text, nil
		}

		// Model narration alongside tool calls is interim output.
		if text != "" && stream != nil {
			stream(text)
		}

		parts = parts[:0]
		for _, fc := range calls {
			log.Printf("[agent] tool call: %s", fc.Name)
			result, err := a.executeTool(ctx, fc)
			if err != nil {
				log.Printf("[agent] tool %s failed: %v", fc.Name, err)
				result = fmt.Sprintf("Error: %v", err)
			}
			if stream != nil {
				stream(result)
			}
			parts = append(parts, genai.FunctionResponse{
				Name:     fc.Name,
				Response: map[string]any{"result": result},
			})
		}
	}

	return "", fmt.Errorf("exceeded maximum tool calls (%d)", maxToolCalls)
}

func (a *Agent) executeTool(ctx context.Context, fc genai.FunctionCall) (string, error) {
	tool, ok := a.registry.Get(fc.Name)
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", fc.Name)
	}
	return tool.Execute(ctx, fc.Args)
}

// functionCalls collects every function call the model requested in this
// response.
func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if fc, ok := part.(genai.FunctionCall); ok {
				calls = append(calls, fc)
			}
		}
	}
	return calls
}

// responseText concatenates the text parts of a response.
func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return b.String()
}
