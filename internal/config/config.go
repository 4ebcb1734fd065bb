package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DefaultMode string          `toml:"default_mode"`
	App         AppConfig       `toml:"app"`
	LLM         LLMConfig       `toml:"llm"`
	Ingest      IngestConfig    `toml:"ingest"`
	Session     SessionConfig   `toml:"session"`
	Modes       map[string]Mode `toml:"modes"`
}

type AppConfig struct {
	Name        string `toml:"name"`
	Env         string `toml:"env"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	GinMode     string `toml:"gin_mode"`
	OpenBrowser bool   `toml:"open_browser"`
}

type LLMConfig struct {
	BaseURL        string  `toml:"base_url"`
	APIKey         string  `toml:"api_key"`
	Model          string  `toml:"model"`
	MaxTokens      int     `toml:"max_tokens"`
	Temperature    float64 `toml:"temperature"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	HistoryLimit   int     `toml:"history_limit"`
	SiteURL        string  `toml:"site_url"`
	SiteName       string  `toml:"site_name"`
}

type IngestConfig struct {
	MaxDocChars    int      `toml:"max_doc_chars"`
	MaxUploadBytes int64    `toml:"max_upload_bytes"`
	SupportedExts  []string `toml:"supported_exts"`
}

type SessionConfig struct {
	CookieName        string `toml:"cookie_name"`
	HistoryTTLMinutes int    `toml:"history_ttl_minutes"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)

	cfg.Modes = mergeModes(cfg.Modes)
	if _, ok := cfg.Modes[cfg.DefaultMode]; !ok {
		cfg.DefaultMode = "general"
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func defaultConfig() *Config {
	return &Config{
		DefaultMode: "general",
		App: AppConfig{
			Name:        "nexus",
			Env:         "dev",
			Host:        "127.0.0.1",
			Port:        8000,
			GinMode:     "release",
			OpenBrowser: true,
		},
		LLM: LLMConfig{
			BaseURL:        "https://openrouter.ai/api/v1",
			APIKey:         "",
			Model:          "nvidia/nemotron-nano-12b-v2-vl:free",
			MaxTokens:      2048,
			Temperature:    0.3,
			TimeoutSeconds: 60,
			HistoryLimit:   10,
			SiteURL:        "http://localhost:8000",
			SiteName:       "Nexus Enterprise Bot",
		},
		Ingest: IngestConfig{
			MaxDocChars:    40000,
			MaxUploadBytes: 10 << 20,
			SupportedExts:  []string{".pdf", ".txt", ".md", ".csv", ".json"},
		},
		Session: SessionConfig{
			CookieName:        "nexus_session",
			HistoryTTLMinutes: 240,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.DefaultMode = getEnv("DEFAULT_MODE", cfg.DefaultMode)
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)
	cfg.App.OpenBrowser = getEnvAsBool("APP_OPEN_BROWSER", cfg.App.OpenBrowser)

	cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.APIKey = getEnv("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.APIKey = getEnv("OPENROUTER_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.MaxTokens = getEnvAsInt("LLM_MAX_TOKENS", cfg.LLM.MaxTokens)
	cfg.LLM.Temperature = getEnvAsFloat("LLM_TEMPERATURE", cfg.LLM.Temperature)
	cfg.LLM.TimeoutSeconds = getEnvAsInt("LLM_TIMEOUT_SECONDS", cfg.LLM.TimeoutSeconds)
	cfg.LLM.HistoryLimit = getEnvAsInt("LLM_HISTORY_LIMIT", cfg.LLM.HistoryLimit)
	cfg.LLM.SiteURL = getEnv("LLM_SITE_URL", cfg.LLM.SiteURL)
	cfg.LLM.SiteName = getEnv("LLM_SITE_NAME", cfg.LLM.SiteName)

	cfg.Ingest.MaxDocChars = getEnvAsInt("INGEST_MAX_DOC_CHARS", cfg.Ingest.MaxDocChars)
	cfg.Ingest.MaxUploadBytes = getEnvAsInt64("INGEST_MAX_UPLOAD_BYTES", cfg.Ingest.MaxUploadBytes)

	cfg.Session.CookieName = getEnv("SESSION_COOKIE_NAME", cfg.Session.CookieName)
	cfg.Session.HistoryTTLMinutes = getEnvAsInt("SESSION_HISTORY_TTL_MINUTES", cfg.Session.HistoryTTLMinutes)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsInt64(key string, fallback int64) int64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
