package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.HTTP.Address)
	require.Equal(t, ProviderGemini, cfg.LLM.Provider)
	require.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	require.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	require.Empty(t, cfg.LLM.Gemini.APIKey)
	require.True(t, cfg.Metrics.Enabled)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":7000"
  allowedOrigins: ["http://localhost:3000"]
llm:
  provider: openai
  temperature: 0.7
  timeout: 30s
  openai:
    baseUrl: "http://llm.local/v1"
log:
  level: debug
`), 0o600))

	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("LLM_TIMEOUT", "45s")

	cfg, err := Load(Path(path))
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-6)
	require.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	require.Equal(t, "sk-env", cfg.LLM.OpenAI.APIKey)
	require.Equal(t, "http://llm.local/v1", cfg.LLM.OpenAI.BaseURL)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", cfg.LLM.Gemini.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(Path("does-not-exist.yaml"))
	require.ErrorContains(t, err, "read config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty address",
			mutate:  func(c *Config) { c.HTTP.Address = " " },
			wantErr: "http.address cannot be empty",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.LLM.Provider = "claude" },
			wantErr: `llm.provider "claude" is not supported`,
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.LLM.Temperature = 3 },
			wantErr: "llm.temperature must be between 0 and 2",
		},
		{
			name:    "llm timeout beyond write timeout",
			mutate:  func(c *Config) { c.LLM.Timeout = 2 * time.Minute },
			wantErr: "llm.timeout must not exceed http.writeTimeout",
		},
		{
			name:    "relative metrics path",
			mutate:  func(c *Config) { c.Metrics.Path = "metrics" },
			wantErr: "metrics.path must start with /",
		},
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			cfg.applyProviderDefaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
