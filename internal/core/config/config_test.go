package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TALENTSCOUT_PROVIDER", "TALENTSCOUT_MODEL", "TALENTSCOUT_TIMEOUT", "TALENTSCOUT_DEBUG",
		"OLLAMA_HOST", "AWS_REGION", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Provider != DefaultProvider {
		t.Errorf("Provider = %q, want %q", cfg.Provider, DefaultProvider)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.MaxQuestions != DefaultMaxQuestions {
		t.Errorf("MaxQuestions = %d", cfg.MaxQuestions)
	}
	if !cfg.CacheEnabled {
		t.Error("cache should be enabled by default")
	}
	if cfg.CachePath != filepath.Join(dir, "cache.db") {
		t.Errorf("CachePath = %q", cfg.CachePath)
	}
	if cfg.QuestionPromptTemplate != DefaultQuestionPrompt {
		t.Error("expected default prompt template")
	}
}

func TestLoadFrom_TOML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	toml := `
provider = "Ollama"
model = "llama3.1"
timeout = "45s"
max_questions = 4

[cache]
enabled = false

[ollama]
host = "http://gpu-box:11434"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "question_prompt.txt"), []byte("Ask about {{tech_list}}"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", cfg.Provider)
	}
	if cfg.Model != "llama3.1" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.MaxQuestions != 4 {
		t.Errorf("MaxQuestions = %d", cfg.MaxQuestions)
	}
	if cfg.CacheEnabled {
		t.Error("cache should be disabled")
	}
	if cfg.OllamaHost != "http://gpu-box:11434" {
		t.Errorf("OllamaHost = %q", cfg.OllamaHost)
	}
	if cfg.QuestionPromptTemplate != "Ask about {{tech_list}}" {
		t.Errorf("QuestionPromptTemplate = %q", cfg.QuestionPromptTemplate)
	}
}

func TestLoadFrom_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`timeout = "soon"`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(dir); err == nil {
		t.Error("expected error for invalid timeout")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TALENTSCOUT_PROVIDER", "OPENAI")
	t.Setenv("TALENTSCOUT_TIMEOUT", "5s")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`provider = "bedrock"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, env should win", cfg.Provider)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q", cfg.OpenAIKey)
	}
}

func TestLoadFrom_NoDir(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CachePath != "" || cfg.LogPath != "" {
		t.Errorf("expected no file paths without a config dir, got %q %q", cfg.CachePath, cfg.LogPath)
	}
}
