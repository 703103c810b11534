package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/notqc/helpmate/internal/llm"
)

func TestGenerate_ParsesBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleBatch)},
	)
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), GenerateInput{Topic: "Dimensional Analysis", Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
}

func TestGenerate_PromptCarriesTopicAndWeakTopics(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleBatch)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{
		Topic:      "Rotational Motion",
		Difficulty: "hard",
		Count:      3,
		WeakTopics: []string{"Torque", "Angular Momentum"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Rotational Motion", "hard", "exactly 3", "Torque, Angular Momentum"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != nil {
		t.Error("quiz generation must not set a response schema")
	}
}

func TestGenerate_DefaultCountWhenZero(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleBatch)},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{Topic: "Optics"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "exactly 5") {
		t.Error("expected default count of 5 in prompt")
	}
}

func TestGenerate_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "Optics", Count: 5})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}

func TestGenerate_GarbageResponseFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`I am unable to help with that.`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "Optics", Count: 5})
	if err == nil {
		t.Fatal("expected error for unparseable response")
	}
}

func TestGenerate_EmptyBatchFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "Optics", Count: 5})
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestGenerate_ShortBatchReturnedAsIs(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleBatch)},
	)
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), GenerateInput{Topic: "Optics", Count: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two questions came back for a ten-question request: no padding,
	// no second request.
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected a single provider call, got %d", mock.CallCount())
	}
}
