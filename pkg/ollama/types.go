package ollama

import (
	"errors"
)

// DefaultBaseURL is the address a locally running Ollama server listens on.
const DefaultBaseURL = "http://localhost:11434"

// Error categories for the two failure modes Generate propagates. Wrap with
// %w so callers can classify via errors.Is.
var (
	// ErrConnectivity marks network-level failures: the endpoint could not
	// be reached, or the stream dropped mid-response.
	ErrConnectivity = errors.New("ollama: connection failed")

	// ErrDecode marks a streamed line that is not valid JSON.
	ErrDecode = errors.New("ollama: malformed stream fragment")
)

// generateFragment is one decoded line of the streamed response body.
// Done is a pointer so an absent field is distinguishable from false; an
// absent field is treated as completion to guarantee termination.
type generateFragment struct {
	Response string `json:"response"`
	Done     *bool  `json:"done"`
}
