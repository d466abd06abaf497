package llm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "llm.yaml")
	doc := []byte("provider: openai\napi_key: sk-test\nmodel: gpt-4o-mini\ntemperature: 0.5\nmax_tokens: 1024\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.5 {
		t.Errorf("temperature = %v", cfg.Temperature)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("max_tokens = %d", cfg.MaxTokens)
	}
}

func TestLoadConfigMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "llm.yaml")
	if err := os.WriteFile(path, []byte("provider: openai\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing api_key and model")
	}
}

func TestConfigValidateProvider(t *testing.T) {
	cfg := &Config{Provider: "bedrock", APIKey: "k", Model: "m"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
	if _, err := NewInstructor(cfg); err == nil {
		t.Fatal("expected NewInstructor to reject unsupported provider")
	}
}

func TestNewInstructorProviders(t *testing.T) {
	for _, provider := range []string{"openai", "anthropic", "cohere"} {
		cfg := &Config{Provider: provider, APIKey: "test-key", Model: "test-model"}
		clt, err := NewInstructor(cfg)
		if err != nil {
			t.Fatalf("NewInstructor(%s): %v", provider, err)
		}
		if clt == nil {
			t.Fatalf("NewInstructor(%s) returned nil client", provider)
		}
	}
}
