package metrics

// TokenUsage is the token accounting reported by a model provider for one call.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	TotalTokens      int `json:"totalTokens"`
}

// NewTokenUsage normalizes provider counts. Providers that omit the total get
// prompt+completion.
func NewTokenUsage(prompt, completion, total int64) TokenUsage {
	if total == 0 {
		total = prompt + completion
	}
	return TokenUsage{
		PromptTokens:     int(prompt),
		CompletionTokens: int(completion),
		TotalTokens:      int(total),
	}
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}
