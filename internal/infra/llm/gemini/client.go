// Package gemini invokes Google's Gemini models through the genai SDK.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/yanqian/notes-assistant/internal/infra/llm"
	"github.com/yanqian/notes-assistant/pkg/metrics"
)

// DefaultModel matches the model the service has always used.
const DefaultModel = "gemini-2.0-flash"

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client generates completions with the Gemini API. The underlying genai
// client is built on first use so a missing key only fails invocations.
type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration

	mu     sync.Mutex
	models contentGenerator
	dial   func(ctx context.Context) (contentGenerator, error)
}

// NewClient constructs a lazily connected Gemini client.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	c := &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimSpace(baseURL),
		timeout: timeout,
	}
	c.dial = c.dialGenAI
	return c
}

// Generate sends the prompt as a single user turn.
func (c *Client) Generate(ctx context.Context, req llm.Request) (llm.Completion, error) {
	models, err := c.ensureModels(ctx)
	if err != nil {
		return llm.Completion{}, err
	}
	model := req.Model
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	temperature := req.Temperature
	resp, err := models.GenerateContent(ctx, model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature: &temperature,
	})
	if err != nil {
		return llm.Completion{}, fmt.Errorf("gemini generate content: %w", err)
	}
	return completionFromResponse(resp)
}

func (c *Client) ensureModels(ctx context.Context) (contentGenerator, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.models != nil {
		return c.models, nil
	}
	if c.apiKey == "" {
		return nil, llm.ErrMissingAPIKey
	}
	models, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	c.models = models
	return models, nil
}

func (c *Client) dialGenAI(ctx context.Context) (contentGenerator, error) {
	cfg := &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: c.timeout}
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client.Models, nil
}

// completionFromResponse joins the non-thought text parts of the first
// candidate. A response without any text part yields llm.ErrNoText.
func completionFromResponse(resp *genai.GenerateContentResponse) (llm.Completion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return llm.Completion{}, llm.ErrNoText
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return llm.Completion{}, llm.ErrNoText
	}

	var (
		builder strings.Builder
		found   bool
	)
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		builder.WriteString(part.Text)
		found = true
	}
	if !found {
		return llm.Completion{}, llm.ErrNoText
	}

	completion := llm.Completion{Text: builder.String()}
	if usage := resp.UsageMetadata; usage != nil {
		completion.Usage = metrics.NewTokenUsage(int64(usage.PromptTokenCount), int64(usage.CandidatesTokenCount), int64(usage.TotalTokenCount))
	}
	return completion, nil
}
