package main

import (
	"log/slog"

	"github.com/yanqian/notes-assistant/internal/domain/notes"
	"github.com/yanqian/notes-assistant/internal/infra/config"
	"github.com/yanqian/notes-assistant/internal/infra/llm/chatgpt"
	"github.com/yanqian/notes-assistant/internal/infra/llm/gemini"
	"github.com/yanqian/notes-assistant/pkg/logger"
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
}

func provideNotesConfig(cfg *config.Config) notes.Config {
	return notes.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}
}

// provideGenerator selects the model provider. Credentials are checked on the
// first model call, not here.
func provideGenerator(cfg *config.Config, logger *slog.Logger) notes.Generator {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		if cfg.LLM.OpenAI.APIKey == "" {
			logger.Warn("OPENAI_API_KEY is not set, model calls will fail")
		}
		return chatgpt.NewClient(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.BaseURL, cfg.LLM.Timeout)
	default:
		if cfg.LLM.Gemini.APIKey == "" {
			logger.Warn("GEMINI_API_KEY is not set, model calls will fail")
		}
		return gemini.NewClient(cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.BaseURL, cfg.LLM.Timeout)
	}
}
