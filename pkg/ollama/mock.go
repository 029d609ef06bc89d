package ollama

import (
	"context"
	"sync"

	"github.com/promptops/go-ollama/pkg/llm"
)

// MockClient implements the llm.Client interface for testing
type MockClient struct {
	mu sync.Mutex

	// GenerateFunc allows customizing the generation behavior
	GenerateFunc func(context.Context, string, llm.Options) ([]string, error)

	// Tracking for assertions
	GenerateCalls []GenerateCall
}

// GenerateCall records the arguments of a single Generate invocation
type GenerateCall struct {
	Prompt    string
	Overrides llm.Options
}

// Ensure MockClient implements llm.Client
var _ llm.Client = (*MockClient)(nil)

// NewMockClient creates a new mock client with default behavior
func NewMockClient() *MockClient {
	return &MockClient{
		GenerateCalls: make([]GenerateCall, 0),
	}
}

// Generate implements llm.Client.Generate
func (m *MockClient) Generate(ctx context.Context, prompt string, overrides llm.Options) ([]string, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, GenerateCall{Prompt: prompt, Overrides: overrides})
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, overrides)
	}

	// Default mock behavior - return a simple single-candidate answer
	return []string{"This is a mock response."}, nil
}

// Reset clears the call history
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateCalls = make([]GenerateCall, 0)
}

// GetGenerateCallCount returns the number of generate calls made
func (m *MockClient) GetGenerateCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GenerateCalls)
}
