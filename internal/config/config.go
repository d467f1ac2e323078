package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	NaverClientID     string        `env:"NAVER_CLIENT_ID"`
	NaverClientSecret string        `env:"NAVER_CLIENT_SECRET"`
	// NaverNewsURL overrides naver.DefaultNewsURL when set.
	NaverNewsURL      string        `env:"NAVER_NEWS_URL"`
	NewsTimeout       time.Duration `env:"NEWS_TIMEOUT"         envDefault:"5s"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL"         envDefault:"gpt-4o"`

	SummaryParallelism int `env:"SUMMARY_PARALLELISM"  envDefault:"1"`

	HTTPAddr           string        `env:"HTTP_ADDR"            envDefault:":8000"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Debug bool `env:"DEBUG"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SummaryParallelism < 1 {
		cfg.SummaryParallelism = 1
	}

	return cfg, nil
}

// MissingCredentials lists the credential variables that are not set.
// Absence is reported, not enforced: the collaborator rejects the call later.
func (c Config) MissingCredentials() []string {
	var missing []string

	if c.NaverClientID == "" {
		missing = append(missing, "NAVER_CLIENT_ID")
	}
	if c.NaverClientSecret == "" {
		missing = append(missing, "NAVER_CLIENT_SECRET")
	}
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}

	return missing
}
