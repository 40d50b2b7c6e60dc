package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

type Config struct {
	Server      ServerConfig
	LLM         LLMConfig
	HuggingFace HuggingFaceConfig
	Gemini      GeminiConfig
	Storage     StorageConfig
	History     HistoryConfig
	Database    DatabaseConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type LLMConfig struct {
	Provider     string
	MaxNewTokens int
	Timeout      time.Duration
}

type HuggingFaceConfig struct {
	APIKey  string
	ModelID string
	APIURL  string
	ChatURL string
}

// GeminiConfig leaves BaseURL empty to use the SDK's default endpoint.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type StorageConfig struct {
	MaxFileSize int64
}

// HistoryConfig controls the optional generation history. Nothing is
// persisted unless Enabled is set.
type HistoryConfig struct {
	Enabled   bool
	Workers   int
	QueueSize int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "3000"),
			Env:      getEnv("ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		LLM: LLMConfig{
			Provider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderHuggingFace)),
			MaxNewTokens: getEnvAsInt("LLM_MAX_NEW_TOKENS", 700),
			Timeout:      getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		HuggingFace: HuggingFaceConfig{
			APIKey:  getEnv("HF_API_KEY", ""),
			ModelID: getEnv("HF_MODEL_ID", "mistralai/Mistral-7B-Instruct-v0.2"),
			APIURL:  strings.TrimRight(getEnv("HF_API_URL", "https://api-inference.huggingface.co"), "/"),
			ChatURL: getEnv("HF_CHAT_URL", "https://router.huggingface.co/v1/chat/completions"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		History: HistoryConfig{
			Enabled:   getEnvAsBool("HISTORY_ENABLED", false),
			Workers:   getEnvAsInt("HISTORY_WORKERS", 2),
			QueueSize: getEnvAsInt("HISTORY_QUEUE_SIZE", 100),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "career_assistant"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

// IsDevelopment reports whether the server runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil && duration > 0 {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
