package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/notqc/helpmate/internal/llm"
)

func TestRespond_RecordsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Focus on ray diagrams first.`)},
		llm.MockResponse{Content: json.RawMessage(`Try solving PYQs on mirrors.`)},
	)
	c := New(mock, DefaultConfig())

	reply, err := c.Respond(context.Background(), "I'm struggling with optics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Focus on ray diagrams first." {
		t.Fatalf("reply = %q", reply)
	}

	_, err = c.Respond(context.Background(), "What should I practice?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second request replays the first exchange.
	msgs := mock.Calls[1].Messages
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[0].Role != llm.RoleUser || msgs[1].Role != llm.RoleAssistant {
		t.Errorf("unexpected roles: %v, %v", msgs[0].Role, msgs[1].Role)
	}

	if len(c.History()) != 4 {
		t.Errorf("history length = %d, want 4", len(c.History()))
	}
}

func TestRespond_EmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	c := New(mock, DefaultConfig())

	if _, err := c.Respond(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty message")
	}
	if mock.CallCount() != 0 {
		t.Error("no provider call expected")
	}
}

func TestRespond_HistoryBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistory = 2

	responses := make([]llm.MockResponse, 5)
	for i := range responses {
		responses[i] = llm.MockResponse{Content: json.RawMessage(`ok`)}
	}
	mock := llm.NewMockProvider(responses...)
	c := New(mock, cfg)

	for i := 0; i < 5; i++ {
		if _, err := c.Respond(context.Background(), "next question"); err != nil {
			t.Fatalf("respond %d: %v", i, err)
		}
	}

	// Last request: 2 history turns + the new user message.
	last := mock.Calls[len(mock.Calls)-1]
	if len(last.Messages) != 3 {
		t.Errorf("got %d messages, want 3", len(last.Messages))
	}
}

func TestRespond_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	c := New(mock, DefaultConfig())

	if _, err := c.Respond(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	// Failed exchanges are not recorded.
	if len(c.History()) != 0 {
		t.Errorf("history length = %d, want 0", len(c.History()))
	}
}

func TestExtractTopics(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Calculus Thermodynamics calculus`)},
	)

	topics, err := ExtractTopics(context.Background(), mock, "I keep failing integration and heat problems")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Lowercased and deduplicated.
	if len(topics) != 2 || topics[0] != "calculus" || topics[1] != "thermodynamics" {
		t.Errorf("topics = %v", topics)
	}

	if !strings.Contains(mock.Calls[0].Messages[0].Content, "integration and heat") {
		t.Error("student message missing from prompt")
	}
}

func TestExtractTopics_None(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`none`)},
	)
	topics, err := ExtractTopics(context.Background(), mock, "thanks, that helped!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("topics = %v, want none", topics)
	}
}

func TestExtractTopics_EmptyMessageSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	topics, err := ExtractTopics(context.Background(), mock, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topics != nil || mock.CallCount() != 0 {
		t.Error("expected no topics and no provider call")
	}
}
