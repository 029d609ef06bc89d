package ollama

import (
	"context"
	"errors"
	"testing"

	"github.com/promptops/go-ollama/pkg/llm"
)

func TestMockClient_Generate(t *testing.T) {
	mock := NewMockClient()

	ctx := context.Background()
	got, err := mock.Generate(ctx, "Hello", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Got %d completions, want 1", len(got))
	}

	// Verify call was tracked
	if mock.GetGenerateCallCount() != 1 {
		t.Errorf("Expected 1 generate call, got %d", mock.GetGenerateCallCount())
	}
	if mock.GenerateCalls[0].Prompt != "Hello" {
		t.Errorf("Recorded prompt = %q, want Hello", mock.GenerateCalls[0].Prompt)
	}
}

func TestMockClient_CustomGenerateFunc(t *testing.T) {
	mock := NewMockClient()

	wantErr := errors.New("upstream unavailable")
	mock.GenerateFunc = func(ctx context.Context, prompt string, overrides llm.Options) ([]string, error) {
		return nil, wantErr
	}

	_, err := mock.Generate(context.Background(), "Hello", llm.Options{"temperature": 0})
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}

	if mock.GetGenerateCallCount() != 1 {
		t.Errorf("Expected 1 generate call, got %d", mock.GetGenerateCallCount())
	}
	if mock.GenerateCalls[0].Overrides["temperature"] != 0 {
		t.Errorf("Recorded overrides = %v", mock.GenerateCalls[0].Overrides)
	}
}

func TestMockClient_Reset(t *testing.T) {
	mock := NewMockClient()

	if _, err := mock.Generate(context.Background(), "one", nil); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, err := mock.Generate(context.Background(), "two", nil); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	mock.Reset()

	if mock.GetGenerateCallCount() != 0 {
		t.Errorf("Expected 0 generate calls after reset, got %d", mock.GetGenerateCallCount())
	}
}
