package config

import "time"

// Config is the root application configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	LLM       LLMConfig       `yaml:"llm"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Log       LogConfig       `yaml:"log"`
}

// APIConfig holds the remote dashboard API connection settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-required:"true"`
	Token   string        `yaml:"token"    env:"API_TOKEN"`
	Timeout time.Duration `yaml:"timeout"  env:"API_TIMEOUT"  env-default:"10s"`
}

// SchedulerConfig holds the posting API settings. Platform and AccountID are
// fixed per deployment; Timezone is the IANA zone the posting API expects
// wall-clock times in.
type SchedulerConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"SCHEDULER_BASE_URL"   env-required:"true"`
	Token     string        `yaml:"token"      env:"SCHEDULER_TOKEN"`
	Platform  string        `yaml:"platform"   env:"SCHEDULER_PLATFORM"   env-default:"linkedin"`
	AccountID string        `yaml:"account_id" env:"SCHEDULER_ACCOUNT_ID" env-required:"true"`
	Timezone  string        `yaml:"timezone"   env:"SCHEDULER_TIMEZONE"   env-default:"UTC"`
	Timeout   time.Duration `yaml:"timeout"    env:"SCHEDULER_TIMEOUT"    env-default:"15s"`
}

// LLMConfig holds the text-generation API settings.
type LLMConfig struct {
	APIKey    string `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64  `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"1024"`
}

// WebhookConfig holds the workflow-automation webhook settings. An empty URL
// disables delivery.
type WebhookConfig struct {
	URL     string        `yaml:"url"     env:"WEBHOOK_URL"`
	Secret  string        `yaml:"secret"  env:"WEBHOOK_SECRET"`
	Timeout time.Duration `yaml:"timeout" env:"WEBHOOK_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
