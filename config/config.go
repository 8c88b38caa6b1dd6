package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Weather chat specifics
	Gemini   GeminiConfig
	Weather  WeatherConfig
	Chat     ChatConfig
	Telegram TelegramConfig

	// Throttling
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type WeatherConfig struct {
	APIKey string
	APIURL string
}

// ChatConfig bounds the in-memory conversation store.
type ChatConfig struct {
	MaxTurns    int
	MaxSessions int
	SessionTTL  time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// OpenWeatherMap
	cfg.Weather.APIKey = viper.GetString("weather.api_key")
	cfg.Weather.APIURL = viper.GetString("weather.api_url")
	if key := viper.GetString("weather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}

	// Conversation store
	cfg.Chat.MaxTurns = viper.GetInt("chat.max_turns")
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")

	// Telegram (optional surface)
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if token := viper.GetString("telegram_bot_token"); token != "" {
		cfg.Telegram.BotToken = token
	}

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Both upstream credentials are required; fail at startup, not on
	// the first request.
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key not configured - set GEMINI_API_KEY or gemini.api_key")
	}
	if cfg.Weather.APIKey == "" {
		return nil, fmt.Errorf("weather api key not configured - set WEATHER_API_KEY or weather.api_key")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("chat.max_turns", 20)
	viper.SetDefault("chat.max_sessions", 1000)
	viper.SetDefault("chat.session_ttl", "30m")
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
