package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Content   ContentConfig   `mapstructure:"content"`
	State     StateConfig     `mapstructure:"state"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// ContentConfig locates the subject/division/chapter tree and the quiz
// frontend files served alongside it.
type ContentConfig struct {
	RootDir          string `mapstructure:"root_dir"`
	ChapterExtension string `mapstructure:"chapter_extension"`
	WebDir           string `mapstructure:"web_dir"`
}

type StateConfig struct {
	FilePath string `mapstructure:"file_path"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("QUIZHUB")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Content
	viper.BindEnv("content.root_dir", "CONTENT_ROOT_DIR")
	viper.BindEnv("content.web_dir", "CONTENT_WEB_DIR")

	// State
	viper.BindEnv("state.file_path", "STATE_FILE_PATH")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("content.root_dir", "subjects")
	viper.SetDefault("content.chapter_extension", ".json")
	viper.SetDefault("content.web_dir", "web")
	viper.SetDefault("state.file_path", "quiz-state.json")
	viper.SetDefault("rate_limit.max_requests", 100000)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.Content.RootDir); os.IsNotExist(err) {
		os.MkdirAll(cfg.Content.RootDir, 0755)
	}

	return &cfg, nil
}

// RateLimitWindow returns the configured window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	minutes := c.RateLimit.WindowMinutes
	if minutes <= 0 {
		minutes = 1
	}
	return time.Duration(minutes) * time.Minute
}
