package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	OpenAI    OpenAIConfig
	SMTP      SMTPConfig
	RateLimit RateLimitConfig

	Secrets Secrets `mapstructure:"-"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type OpenAIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	SpeechModel    string `mapstructure:"speech_model"`
	ChatModel      string `mapstructure:"chat_model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	User string `mapstructure:"user"`
	From string `mapstructure:"from"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Secrets are read from the process environment, never from the config
// file.
type Secrets struct {
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" required:"true"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 120)
	viper.SetDefault("database.path", "assistant.db")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.speech_model", "whisper-1")
	viper.SetDefault("openai.chat_model", "gpt-4o")
	viper.SetDefault("openai.timeout_seconds", 120)
	viper.SetDefault("ratelimit.requests_per_second", 5)
	viper.SetDefault("ratelimit.burst", 10)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Defaults cover a missing file for the desk-tool deployment.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config.Secrets); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &config, nil
}
