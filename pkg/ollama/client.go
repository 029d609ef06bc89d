package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/promptops/go-ollama/pkg/llm"
)

// baselineOptions are the generation parameters applied when neither the
// constructor nor the call site overrides them.
var baselineOptions = llm.Options{
	"temperature": 0.7,
	"n":           1,
}

// maxLineBytes caps the size of a single streamed fragment line.
const maxLineBytes = 1 << 20

// HTTPClient implements the llm.Client interface against a local
// Ollama-compatible server using streamed HTTP requests.
//
// The client is safe for concurrent use: no field is mutated after
// construction and every call owns its own request and accumulator.
type HTTPClient struct {
	model      string
	baseURL    string
	options    llm.Options
	httpClient *http.Client
	logger     zerolog.Logger
}

// Ensure HTTPClient implements llm.Client
var _ llm.Client = (*HTTPClient)(nil)

// Config holds configuration for the Ollama client
type Config struct {
	Model   string         // Required, e.g. "mistral"
	BaseURL string         // Default: http://localhost:11434
	Options llm.Options    // Merged on top of the baseline {temperature: 0.7, n: 1}
	Logger  *zerolog.Logger // Default: the global zerolog logger
}

// NewHTTPClient creates a new Ollama HTTP client. No network I/O happens
// here; the configuration is merged and recorded, nothing more. The client
// deliberately sets no timeout: a hung upstream stream blocks until the
// caller cancels the context.
func NewHTTPClient(config Config) (*HTTPClient, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	logger := zlog.Logger
	if config.Logger != nil {
		logger = *config.Logger
	}

	c := &HTTPClient{
		model:      config.Model,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		options:    llm.Merge(baselineOptions, config.Options),
		httpClient: &http.Client{},
		logger:     logger,
	}

	c.logger.Debug().
		Str("model", c.model).
		Str("base_url", c.baseURL).
		Msg("ollama client initialized")

	return c, nil
}

// Generate implements llm.Client.Generate. It posts the prompt to
// /api/generate and folds the streamed fragments into a single trimmed
// answer, wrapped in a one-element slice.
//
// A non-200 status is logged and surfaced as []string{""} with a nil error,
// so a failed request is indistinguishable from an empty answer by return
// value alone; the warning log carries the status and body.
func (c *HTTPClient) Generate(ctx context.Context, prompt string, overrides llm.Options) ([]string, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	// Per-call overrides > constructor options > baseline
	payload := map[string]any{
		"model":  c.model,
		"prompt": prompt,
	}
	for k, v := range llm.Merge(c.options, overrides) {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	reqID := uuid.NewString()
	c.logger.Debug().
		Str("request_id", reqID).
		Str("model", c.model).
		Msg("sending generate request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn().
			Str("request_id", reqID).
			Int("status", resp.StatusCode).
			Str("body", string(snippet)).
			Msg("generate request failed")
		return []string{""}, nil
	}

	answer, err := c.collect(resp.Body)
	if err != nil {
		return nil, err
	}

	return []string{answer}, nil
}

// Ask is shorthand for Generate with no per-call overrides.
func (c *HTTPClient) Ask(ctx context.Context, prompt string) ([]string, error) {
	return c.Generate(ctx, prompt, nil)
}

// collect folds the newline-delimited fragment stream into the final answer.
// Reading stops at the first fragment that reports completion; fragments
// after it are never consumed.
func (c *HTTPClient) collect(r io.Reader) (string, error) {
	var answer strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()

		// Skip blank lines
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var frag generateFragment
		if err := json.Unmarshal(line, &frag); err != nil {
			return "", fmt.Errorf("%w: %w", ErrDecode, err)
		}

		answer.WriteString(frag.Response)

		if frag.Done == nil || *frag.Done {
			break
		}
	}

	// Stream end without a done fragment is an implicit completion.
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	return strings.TrimSpace(answer.String()), nil
}
