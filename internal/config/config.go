package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ContentAudit/internal/domain"
)

const (
	defaultTimezone  = "UTC"
	configPathEnv    = "CONTENT_AUDIT_CONFIG"
	logLevelEnv      = "LOG_LEVEL"
	backendEnv       = "ORACLE_BACKEND"
	serviceURLEnv    = "ORACLE_SERVICE_URL"
	anthropicKeyEnv  = "ANTHROPIC_API_KEY"
	anthropicModEnv  = "ANTHROPIC_MODEL"
	openAIKeyEnv     = "OPENAI_API_KEY"
	openAIModelEnv   = "OPENAI_MODEL"
	geminiKeyEnv     = "GEMINI_API_KEY"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	telegramChatEnv  = "TELEGRAM_CHAT_ID"
)

// Oracle backends selectable through oracle.backend or ORACLE_BACKEND.
const (
	BackendAuto      = "auto"
	BackendAnthropic = "anthropic"
	BackendChatGPT   = "openai"
	BackendGemini    = "gemini"
	BackendService   = "service"
	BackendNone      = "none"
)

const (
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultGeminiModel    = "gemini-2.5-flash"
)

// Content entry kinds understood by the loaders.
const (
	KindInline = "inline"
	KindFile   = "file"
	KindWeb    = "web"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Oracle        OracleConfig       `yaml:"oracle"`
	Anthropic     AnthropicConfig    `yaml:"anthropic"`
	ChatGPT       ChatGPTConfig      `yaml:"chatgpt"`
	Gemini        GeminiConfig       `yaml:"gemini"`
	Service       ServiceConfig      `yaml:"service"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Notifications NotificationConfig `yaml:"notifications"`
	Personas      []domain.Persona   `yaml:"personas"`
	Corpus        []ContentConfig    `yaml:"corpus"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OracleConfig selects the oracle backend and bounds classification traffic.
type OracleConfig struct {
	Backend           string  `yaml:"backend"`
	MaxConcurrency    int     `yaml:"maxConcurrency"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	MaxContentChars   int     `yaml:"maxContentChars"`
}

// AnthropicConfig configures the Claude backend.
type AnthropicConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// ChatGPTConfig defines how to contact the ChatGPT API.
type ChatGPTConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Model        string `yaml:"model"`
	APIKey       string `yaml:"apiKey"`
	SystemPrompt string `yaml:"systemPrompt"`
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// ServiceConfig describes a self-hosted classification/strategy service.
type ServiceConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
}

// SchedulerConfig defines how often a re-audit runs.
type SchedulerConfig struct {
	Interval time.Duration  `yaml:"interval"`
	Timezone string         `yaml:"timezone"`
	location *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// NotificationConfig encapsulates outbound channels.
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// ContentConfig describes one corpus entry and the loader that reads it.
type ContentConfig struct {
	Kind   string `yaml:"kind"`
	Title  string `yaml:"title"`
	Source string `yaml:"source"`
	Type   string `yaml:"type"`
	Text   string `yaml:"text"`
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
}

// ResolvedKind infers the loader kind when it is not set explicitly.
func (c ContentConfig) ResolvedKind() string {
	if c.Kind != "" {
		return strings.ToLower(c.Kind)
	}
	switch {
	case c.URL != "":
		return KindWeb
	case c.Path != "":
		return KindFile
	default:
		return KindInline
	}
}

// Roster returns the configured personas as a roster.
func (c Config) Roster() domain.Roster {
	return domain.Roster(c.Personas).Clone()
}

// Load reads YAML configuration (if present) and applies environment overrides.
// An empty path falls back to CONTENT_AUDIT_CONFIG.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Personas) == 0 {
		cfg.Personas = domain.DefaultPersonas()
	}

	return cfg
}

// LoadPersonas reads a persona roster from a YAML list.
func LoadPersonas(path string) (domain.Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read personas %s: %w", path, err)
	}
	var roster domain.Roster
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("parse personas %s: %w", path, err)
	}
	for i, p := range roster {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("parse personas %s: entry %d has no name", path, i)
		}
	}
	return roster, nil
}

// LoadCorpus reads a corpus manifest from a YAML list of content entries.
func LoadCorpus(path string) ([]ContentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	var entries []ContentConfig
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return entries, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(backendEnv); v != "" {
		c.Oracle.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(serviceURLEnv); v != "" {
		c.Service.Endpoint = v
	}

	if v := os.Getenv(anthropicKeyEnv); v != "" {
		c.Anthropic.APIKey = v
	}
	if v := os.Getenv(anthropicModEnv); v != "" {
		c.Anthropic.Model = v
	}

	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.ChatGPT.APIKey = v
	}
	if v := os.Getenv(openAIModelEnv); v != "" {
		c.ChatGPT.Model = v
	}

	if v := os.Getenv(geminiKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}
	if v := os.Getenv(telegramChatEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scheduler.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Oracle.Backend != "" {
		base.Oracle.Backend = strings.ToLower(override.Oracle.Backend)
	}
	if override.Oracle.MaxConcurrency > 0 {
		base.Oracle.MaxConcurrency = override.Oracle.MaxConcurrency
	}
	if override.Oracle.RequestsPerSecond > 0 {
		base.Oracle.RequestsPerSecond = override.Oracle.RequestsPerSecond
	}
	if override.Oracle.MaxContentChars > 0 {
		base.Oracle.MaxContentChars = override.Oracle.MaxContentChars
	}

	if override.Anthropic.APIKey != "" {
		base.Anthropic.APIKey = override.Anthropic.APIKey
	}
	if override.Anthropic.Model != "" {
		base.Anthropic.Model = override.Anthropic.Model
	}

	if override.ChatGPT.Endpoint != "" {
		base.ChatGPT.Endpoint = override.ChatGPT.Endpoint
	}
	if override.ChatGPT.Model != "" {
		base.ChatGPT.Model = override.ChatGPT.Model
	}
	if override.ChatGPT.APIKey != "" {
		base.ChatGPT.APIKey = override.ChatGPT.APIKey
	}
	if override.ChatGPT.SystemPrompt != "" {
		base.ChatGPT.SystemPrompt = override.ChatGPT.SystemPrompt
	}

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}

	if override.Service.Endpoint != "" {
		base.Service.Endpoint = override.Service.Endpoint
	}
	if override.Service.APIKey != "" {
		base.Service.APIKey = override.Service.APIKey
	}

	if override.Scheduler.Interval > 0 {
		base.Scheduler.Interval = override.Scheduler.Interval
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if len(override.Personas) > 0 {
		base.Personas = override.Personas
	}
	if len(override.Corpus) > 0 {
		base.Corpus = override.Corpus
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Oracle: OracleConfig{
			Backend:           BackendAuto,
			MaxConcurrency:    4,
			RequestsPerSecond: 2,
			MaxContentChars:   8000,
		},
		Anthropic: AnthropicConfig{Model: DefaultAnthropicModel},
		ChatGPT: ChatGPTConfig{
			Endpoint:     "https://api.openai.com/v1/chat/completions",
			Model:        "gpt-4o-mini",
			SystemPrompt: "You are a content strategist who answers with strict JSON.",
		},
		Gemini:    GeminiConfig{Model: DefaultGeminiModel},
		Scheduler: SchedulerConfig{Interval: 24 * time.Hour, Timezone: defaultTimezone, location: tz},
		Personas:  domain.DefaultPersonas(),
	}
}
