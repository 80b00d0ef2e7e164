package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultQuestionPrompt is the mustache template for question generation.
// Variables: experience, tech_list (triple braces skip HTML escaping).
const DefaultQuestionPrompt = `The candidate has {{{experience}}} years of experience.
Their tech stack includes: {{{tech_list}}}.

Task: Generate exactly 3 technical screening questions for EACH of the following technologies: {{{tech_list}}}.

Rules:
1. Questions should be specific to the technology.
2. Test practical understanding.
3. Return ONLY the questions as a single flat numbered list.
4. Do not include headers, intro, or outro text.`

// DefaultSystemPrompt frames the model as a recruiter
const DefaultSystemPrompt = "You are a technical recruiter. Your goal is to screen candidates effectively."

const (
	DefaultProvider     = "none"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxQuestions = 6
)

type Config struct {
	QuestionPromptTemplate string
	SystemPrompt           string

	Provider     string // bedrock, ollama, openai, anthropic, none
	Model        string
	Timeout      time.Duration
	MaxQuestions int

	CacheEnabled bool
	CachePath    string
	QuestionBank string // YAML question bank for the offline generator

	BedrockRegion  string
	BedrockProfile string
	OllamaHost     string
	OpenAIKey      string
	AnthropicKey   string

	LogPath string
	Debug   bool
}

type tomlConfig struct {
	Provider     string `toml:"provider"`
	Model        string `toml:"model"`
	Timeout      string `toml:"timeout"`
	MaxQuestions int    `toml:"max_questions"`
	QuestionBank string `toml:"question_bank"`
	LogPath      string `toml:"log_path"`
	Debug        bool   `toml:"debug"`

	Cache struct {
		Enabled *bool  `toml:"enabled"`
		Path    string `toml:"path"`
	} `toml:"cache"`

	Bedrock struct {
		Region  string `toml:"region"`
		Profile string `toml:"profile"`
	} `toml:"bedrock"`

	Ollama struct {
		Host string `toml:"host"`
	} `toml:"ollama"`
}

// Dir returns ~/.config/talentscout
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "talentscout"), nil
}

// Load reads config from ~/.config/talentscout/, then .env and the environment
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		dir = "" // Use defaults
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.toml and question_prompt.txt from dir. An empty dir
// skips the files and applies only defaults and environment overrides.
func LoadFrom(dir string) (*Config, error) {
	cfg := defaults(dir)

	if dir != "" {
		tomlPath := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(tomlPath); err == nil {
			var tc tomlConfig
			if _, err := toml.DecodeFile(tomlPath, &tc); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", tomlPath, err)
			}
			if err := cfg.apply(tc); err != nil {
				return nil, err
			}
		}

		// If custom prompt template exists, use it
		if data, err := os.ReadFile(filepath.Join(dir, "question_prompt.txt")); err == nil {
			cfg.QuestionPromptTemplate = string(data)
		}
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults(dir string) *Config {
	cfg := &Config{
		QuestionPromptTemplate: DefaultQuestionPrompt,
		SystemPrompt:           DefaultSystemPrompt,
		Provider:               DefaultProvider,
		Timeout:                DefaultTimeout,
		MaxQuestions:           DefaultMaxQuestions,
		CacheEnabled:           true,
		BedrockRegion:          "us-east-1",
		OllamaHost:             "http://localhost:11434",
	}
	if dir != "" {
		cfg.CachePath = filepath.Join(dir, "cache.db")
		cfg.LogPath = filepath.Join(dir, "talentscout.log")
	}
	return cfg
}

func (c *Config) apply(tc tomlConfig) error {
	if tc.Provider != "" {
		c.Provider = strings.ToLower(tc.Provider)
	}
	if tc.Model != "" {
		c.Model = tc.Model
	}
	if tc.Timeout != "" {
		d, err := time.ParseDuration(tc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", tc.Timeout, err)
		}
		c.Timeout = d
	}
	if tc.MaxQuestions > 0 {
		c.MaxQuestions = tc.MaxQuestions
	}
	if tc.QuestionBank != "" {
		c.QuestionBank = expandHome(tc.QuestionBank)
	}
	if tc.LogPath != "" {
		c.LogPath = expandHome(tc.LogPath)
	}
	c.Debug = c.Debug || tc.Debug

	if tc.Cache.Enabled != nil {
		c.CacheEnabled = *tc.Cache.Enabled
	}
	if tc.Cache.Path != "" {
		c.CachePath = expandHome(tc.Cache.Path)
	}
	if tc.Bedrock.Region != "" {
		c.BedrockRegion = tc.Bedrock.Region
	}
	if tc.Bedrock.Profile != "" {
		c.BedrockProfile = tc.Bedrock.Profile
	}
	if tc.Ollama.Host != "" {
		c.OllamaHost = tc.Ollama.Host
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TALENTSCOUT_PROVIDER"); v != "" {
		c.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("TALENTSCOUT_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("TALENTSCOUT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TALENTSCOUT_TIMEOUT %q: %w", v, err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("TALENTSCOUT_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		c.OllamaHost = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.BedrockRegion = v
	}
	c.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	c.AnthropicKey = os.Getenv("ANTHROPIC_API_KEY")
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
