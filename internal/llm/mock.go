package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply for the MockProvider. Content is
// handed back verbatim, so a test can feed the exact bytes a study
// component expects (a quiz payload, an analysis report, a chat reply)
// or malformed text to exercise the lenient parsers.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockQuizResponse wraps a raw quiz payload as a canned reply.
// Shorthand for the most common fixture in quiz-generation tests.
func MockQuizResponse(payload string) MockResponse {
	return MockResponse{Content: json.RawMessage(payload)}
}

// MockProvider is a deterministic Provider for tests. Canned replies
// drain in FIFO order, one per Generate call, and every request is
// recorded so tests can assert on the prompts the study components
// build (weak-topic bias in quiz prompts, replayed chat history,
// extracted document text).
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

// NewMockProvider creates a MockProvider preloaded with the given
// canned replies.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate records req and returns the next canned reply, or
// ErrProviderUnavailable once the queue runs dry. An exhausted queue
// doubles as a provider outage in fallback tests.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.queue[0]
	m.queue = m.queue[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned reply to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Prompt returns the last user message of call i, or "" when the call
// or message does not exist. Most assertions only care about the
// student-facing prompt, not the full message list.
func (m *MockProvider) Prompt(i int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.Calls) {
		return ""
	}
	msgs := m.Calls[i].Messages
	for j := len(msgs) - 1; j >= 0; j-- {
		if msgs[j].Role == RoleUser {
			return msgs[j].Content
		}
	}
	return ""
}
