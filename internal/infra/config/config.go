package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Path points at an optional YAML file. Empty falls back to CONFIG_PATH and
// then configs/config.yaml.
type Path string

const defaultPath = "configs/config.yaml"

// Supported model providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	LLM     LLMConfig     `yaml:"llm"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS"`
	ReadTimeout     time.Duration `yaml:"readTimeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowedOrigins" env:"HTTP_ALLOWED_ORIGINS"`
}

// LLMConfig selects and configures the generative model provider.
type LLMConfig struct {
	Provider    string        `yaml:"provider" env:"LLM_PROVIDER"`
	Model       string        `yaml:"model" env:"LLM_MODEL"`
	Temperature float32       `yaml:"temperature" env:"LLM_TEMPERATURE"`
	Timeout     time.Duration `yaml:"timeout" env:"LLM_TIMEOUT"`
	Gemini      GeminiConfig  `yaml:"gemini"`
	OpenAI      OpenAIConfig  `yaml:"openai"`
}

// GeminiConfig holds Gemini API credentials. The key is not validated on load.
type GeminiConfig struct {
	APIKey  string `yaml:"apiKey" env:"GEMINI_API_KEY"`
	BaseURL string `yaml:"baseUrl" env:"GEMINI_BASE_URL"`
}

// OpenAIConfig holds credentials for an OpenAI compatible endpoint.
type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey" env:"OPENAI_API_KEY"`
	BaseURL string `yaml:"baseUrl" env:"OPENAI_BASE_URL"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path" env:"METRICS_PATH"`
}

// Load reads .env, the YAML file and environment variables, in that order of
// increasing precedence.
func Load(path Path) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()

	file := string(path)
	if file == "" {
		file = os.Getenv("CONFIG_PATH")
	}
	if file != "" {
		if err := hydrateFromFile(cfg, file); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultPath); err == nil {
		if err := hydrateFromFile(cfg, defaultPath); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":5000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    90 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			Provider:    ProviderGemini,
			Temperature: 0.4,
			Timeout:     60 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

func (c *Config) applyProviderDefaults() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if strings.TrimSpace(c.LLM.Model) != "" {
		return
	}
	switch c.LLM.Provider {
	case ProviderOpenAI:
		c.LLM.Model = "gpt-4o-mini"
	default:
		c.LLM.Model = "gemini-2.0-flash"
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Address) == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	if c.HTTP.WriteTimeout > 0 && c.LLM.Timeout > c.HTTP.WriteTimeout {
		return errors.New("llm.timeout must not exceed http.writeTimeout")
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if c.LLM.Timeout < 0 {
		return errors.New("llm.timeout cannot be negative")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("metrics.path must start with /")
	}
	return nil
}
