// Package llm builds instructor clients from an explicit configuration
// struct. Configuration is constructed once at process start and threaded
// through, never read ambiently from the environment by library code.
package llm

import (
	"fmt"
	"os"

	"github.com/bububa/instructor-go/pkg/instructor"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	"github.com/go-playground/validator/v10"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
	"gopkg.in/yaml.v3"
)

// Config carries the provider credentials and model defaults for one client.
type Config struct {
	// Provider is one of openai, anthropic or cohere.
	Provider string `yaml:"provider" validate:"required,oneof=openai anthropic cohere"`
	// APIKey authenticates against the provider.
	APIKey string `yaml:"api_key" validate:"required"`
	// BaseURL overrides the provider endpoint, e.g. for proxies.
	BaseURL string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	// Model is the default model name.
	Model string `yaml:"model" validate:"required"`
	// Temperature is the default sampling temperature.
	Temperature float32 `yaml:"temperature,omitempty" validate:"gte=0,lte=2"`
	// MaxTokens caps completion length, 0 means provider default.
	MaxTokens int `yaml:"max_tokens,omitempty" validate:"gte=0"`
	// MaxRetries bounds instructor's schema-repair retries.
	MaxRetries int `yaml:"max_retries,omitempty" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid llm config: %w", err)
	}
	return nil
}

// Load reads and validates a Config from a yaml file.
func Load(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewInstructor builds a structured-output client for the configured
// provider.
func NewInstructor(cfg *Config) (instructor.Instructor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}
	switch cfg.Provider {
	case "anthropic":
		opts := make([]anthropic.ClientOption, 0, 1)
		if cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
		}
		clt := anthropic.NewClient(cfg.APIKey, opts...)
		return instructor.FromAnthropic(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(maxRetries), instructor.WithValidation()), nil
	case "cohere":
		opts := make([]cohereOption.RequestOption, 0, 2)
		opts = append(opts, cohereOption.WithToken(cfg.APIKey))
		if cfg.BaseURL != "" {
			opts = append(opts, cohereOption.WithBaseURL(cfg.BaseURL))
		}
		clt := cohereClient.NewClient(opts...)
		return instructor.FromCohere(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(maxRetries), instructor.WithValidation()), nil
	case "openai":
		conf := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			conf.BaseURL = cfg.BaseURL
		}
		clt := openai.NewClientWithConfig(conf)
		return instructor.FromOpenAI(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(maxRetries), instructor.WithValidation()), nil
	}
	return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
}
