package agent

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"

	"tokenbot/tools"
)

func respWithParts(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestResponseText(t *testing.T) {
	resp := respWithParts(genai.Text("hello "), genai.Text("world"))
	if got := responseText(resp); got != "hello world" {
		t.Errorf("responseText = %q", got)
	}

	empty := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}
	if got := responseText(empty); got != "" {
		t.Errorf("responseText on nil content = %q", got)
	}
}

func TestFunctionCalls(t *testing.T) {
	resp := respWithParts(
		genai.Text("let me check"),
		genai.FunctionCall{Name: "get_gas_price", Args: map[string]any{"chain": "base"}},
		genai.FunctionCall{Name: "get_block_number"},
	)

	calls := functionCalls(resp)
	if len(calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(calls))
	}
	if calls[0].Name != "get_gas_price" || calls[1].Name != "get_block_number" {
		t.Errorf("calls out of order: %+v", calls)
	}
	if calls[0].Args["chain"] != "base" {
		t.Errorf("args not carried: %+v", calls[0].Args)
	}

	if got := functionCalls(respWithParts(genai.Text("plain answer"))); len(got) != 0 {
		t.Errorf("text-only response should have no calls, got %+v", got)
	}
}

// overlapSender mimics a chat session whose history must never be touched by
// two exchanges at once.
type overlapSender struct {
	inFlight int32
	overlaps int32
	history  []string
}

func (s *overlapSender) SendMessage(_ context.Context, _ ...genai.Part) (*genai.GenerateContentResponse, error) {
	if atomic.AddInt32(&s.inFlight, 1) > 1 {
		atomic.AddInt32(&s.overlaps, 1)
	}
	time.Sleep(time.Millisecond)
	s.history = append(s.history, "turn")
	atomic.AddInt32(&s.inFlight, -1)
	return respWithParts(genai.Text("ok")), nil
}

func TestChatSerializesConcurrentCalls(t *testing.T) {
	fake := &overlapSender{}
	a := &Agent{session: fake, registry: tools.NewRegistry()}

	var wg sync.WaitGroup
	const callers = 8
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, err := a.Chat(context.Background(), "hi", nil)
			if err != nil {
				t.Errorf("Chat: %v", err)
			}
			if reply != "ok" {
				t.Errorf("reply = %q", reply)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&fake.overlaps); n != 0 {
		t.Errorf("%d conversation turns overlapped; Chat must hold the session exclusively", n)
	}
	if len(fake.history) != callers {
		t.Errorf("history has %d turns, want %d", len(fake.history), callers)
	}
}
