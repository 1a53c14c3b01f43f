package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfigFile(t, `
api:
  base_url: "https://api.example.com"
  token: "api-token"
scheduler:
  base_url: "https://posting.example.com"
  account_id: "acct-1"
  timezone: "America/Chicago"
llm:
  api_key: "sk-test"
log:
  level: "debug"
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("api base url: got %q", cfg.API.BaseURL)
	}
	if cfg.Scheduler.Timezone != "America/Chicago" {
		t.Errorf("timezone: got %q", cfg.Scheduler.Timezone)
	}
	if cfg.Scheduler.Platform != "linkedin" {
		t.Errorf("platform default: got %q", cfg.Scheduler.Platform)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("api timeout default: got %v", cfg.API.Timeout)
	}
	if cfg.LLM.MaxTokens != 1024 {
		t.Errorf("max tokens default: got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %q", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfigFile(t, `
api:
  base_url: "https://yaml.example.com"
scheduler:
  base_url: "https://posting.example.com"
  account_id: "acct-1"
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("API_BASE_URL", "https://env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("api base url: got %q, want env value", cfg.API.BaseURL)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			API:       APIConfig{BaseURL: "https://api.example.com"},
			Scheduler: SchedulerConfig{BaseURL: "https://posting.example.com", AccountID: "a", Timezone: "UTC"},
			LLM:       LLMConfig{MaxTokens: 1024},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"relative api url", func(c *Config) { c.API.BaseURL = "/just/a/path" }, "api.base_url"},
		{"bad scheduler url", func(c *Config) { c.Scheduler.BaseURL = "" }, "scheduler.base_url"},
		{"bad webhook url", func(c *Config) { c.Webhook.URL = "not a url" }, "webhook.url"},
		{"unknown timezone", func(c *Config) { c.Scheduler.Timezone = "Nowhere/Void" }, "scheduler.timezone"},
		{"zero max tokens", func(c *Config) { c.LLM.MaxTokens = 0 }, "llm.max_tokens"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error: got %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}
