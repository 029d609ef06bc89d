package llm

import (
	"context"
)

// Options holds generation parameters sent alongside a prompt, keyed by the
// server's option names (e.g. "temperature", "n"). Option maps layer: a
// per-call map takes precedence over a client's stored defaults, which take
// precedence over the provider's built-in baseline.
type Options map[string]any

// Client interface for language model backends.
//
// A prompting framework that wraps a Client may rely on Generate returning a
// sequence containing exactly one completion string per call.
type Client interface {
	// Generate sends a prompt and returns the candidate completions.
	// A nil overrides map applies the client's stored defaults unchanged.
	Generate(ctx context.Context, prompt string, overrides Options) ([]string, error)
}

// Merge layers override maps left to right on top of base and returns a new
// map; base and the overrides are never mutated.
func Merge(base Options, overrides ...Options) Options {
	merged := make(Options, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}
