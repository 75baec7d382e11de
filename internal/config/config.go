package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type TwilioConfig struct {
	AccountSID     string `yaml:"account_sid"`
	AuthToken      string `yaml:"auth_token"`
	WhatsAppNumber string `yaml:"whatsapp_number"`
}

type AIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

type AssistantConfig struct {
	CountryCode   string `yaml:"country_code"`
	HistoryLimit  int    `yaml:"history_limit"`
	FollowUpDelay string `yaml:"follow_up_delay"`
	RecapHour     int    `yaml:"recap_hour"`
	SessionTTL    string `yaml:"session_ttl"`
	ResetTokenTTL string `yaml:"reset_token_ttl"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Twilio    TwilioConfig    `yaml:"twilio"`
	AI        AIConfig        `yaml:"ai"`
	Assistant AssistantConfig `yaml:"assistant"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	TwilioSID      string
	TwilioToken    string
	TwilioWhatsApp string

	AIKey     string
	AIBaseURL string
	AIModel   string
	AITimeout time.Duration

	CountryCode   string
	HistoryLimit  int
	FollowUpDelay time.Duration
	RecapHour     int
	SessionTTL    time.Duration
	ResetTokenTTL time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load reads config/config.yml when present and fills the gaps from
// environment variables. A .env file in the working directory is loaded
// first. Missing external credentials are logged but do not stop the
// process from starting.
func Load() (*Config, error) {
	_ = godotenv.Load()

	file := &ConfigFile{}
	if loaded, err := loadConfigFile("config/config.yml"); err == nil {
		file = loaded
	} else {
		log.Printf("config: no config file, using environment only: %v", err)
	}

	cfg := &Config{
		Port:          firstNonEmpty(intToPort(file.App.Port), env("PORT", "3000")),
		GinMode:       firstNonEmpty(file.App.GinMode, env("GIN_MODE", "")),
		DSN:           firstNonEmpty(file.Database.DSN, env("DATABASE_DSN", "")),
		RedisAddr:     firstNonEmpty(file.Redis.Addr, env("REDIS_ADDR", "localhost:6379")),
		RedisPassword: firstNonEmpty(file.Redis.Password, env("REDIS_PASSWORD", "")),
		RedisDB:       file.Redis.DB,

		TwilioSID:      firstNonEmpty(file.Twilio.AccountSID, env("TWILIO_ACCOUNT_SID", "")),
		TwilioToken:    firstNonEmpty(file.Twilio.AuthToken, env("TWILIO_AUTH_TOKEN", "")),
		TwilioWhatsApp: firstNonEmpty(file.Twilio.WhatsAppNumber, env("TWILIO_WHATSAPP_NUMBER", "")),

		AIKey:     firstNonEmpty(file.AI.APIKey, env("AI_API_KEY", "")),
		AIBaseURL: firstNonEmpty(file.AI.BaseURL, env("AI_BASE_URL", "https://api.openai.com/v1")),
		AIModel:   firstNonEmpty(file.AI.Model, env("AI_MODEL", "gpt-4o-mini")),

		CountryCode:  firstNonEmpty(file.Assistant.CountryCode, env("COUNTRY_CODE", "+52")),
		HistoryLimit: file.Assistant.HistoryLimit,
		RecapHour:    file.Assistant.RecapHour,
	}
	if cfg.RedisDB == 0 {
		cfg.RedisDB = envInt("REDIS_DB", 0)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = envInt("HISTORY_LIMIT", 10)
	}
	if cfg.RecapHour == 0 {
		cfg.RecapHour = envInt("RECAP_HOUR", 20)
	}

	var err error
	if cfg.AITimeout, err = parseDuration(file.AI.Timeout, env("AI_TIMEOUT", "15s")); err != nil {
		return nil, fmt.Errorf("invalid AI timeout: %w", err)
	}
	if cfg.FollowUpDelay, err = parseDuration(file.Assistant.FollowUpDelay, env("FOLLOW_UP_DELAY", "10s")); err != nil {
		return nil, fmt.Errorf("invalid follow-up delay: %w", err)
	}
	if cfg.SessionTTL, err = parseDuration(file.Assistant.SessionTTL, env("SESSION_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}
	if cfg.ResetTokenTTL, err = parseDuration(file.Assistant.ResetTokenTTL, env("RESET_TOKEN_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	cfg.warnMissing()
	return cfg, nil
}

// warnMissing logs absent external credentials at startup. The process
// still starts; affected integrations run in degraded or mock mode.
func (c *Config) warnMissing() {
	if c.DSN == "" {
		log.Println("config: DATABASE_DSN not set")
	}
	if c.TwilioSID == "" || c.TwilioToken == "" {
		log.Println("config: Twilio credentials not set, outbound sends will be mocked")
	}
	if c.TwilioWhatsApp == "" {
		log.Println("config: TWILIO_WHATSAPP_NUMBER not set")
	}
	if c.AIKey == "" {
		log.Println("config: AI_API_KEY not set, replies will use the keyword fallback")
	}
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func parseDuration(fromFile, fromEnv string) (time.Duration, error) {
	s := firstNonEmpty(fromFile, fromEnv)
	return time.ParseDuration(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func intToPort(p int) string {
	if p == 0 {
		return ""
	}
	return strconv.Itoa(p)
}
