// Package llm defines the boundary between the notes pipeline and the
// generative model providers.
package llm

import (
	"errors"

	"github.com/yanqian/notes-assistant/pkg/metrics"
)

var (
	// ErrNoText is returned when the provider answered without any text part.
	ErrNoText = errors.New("model response contained no text")
	// ErrMissingAPIKey is returned on invocation when no credential is configured.
	ErrMissingAPIKey = errors.New("model api key is not configured")
)

// Request is a single-prompt completion request.
type Request struct {
	Model       string
	Prompt      string
	Temperature float32
}

// Completion is the text produced for a Request.
type Completion struct {
	Text  string
	Usage metrics.TokenUsage
}
