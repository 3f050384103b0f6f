package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	App    AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	TranslationDelay   time.Duration // simulated latency of the mock translator
	DefaultLanguage    string        // preselected translation target
	SessionIdleTimeout time.Duration // assistance sessions idle longer than this are dropped
}

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	// .env only seeds the process environment; it is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.refuge-connect")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.translationDelay", "1s")
	v.SetDefault("app.defaultLanguage", "German")
	v.SetDefault("app.sessionIdleTimeout", "30m")

	// Read from environment variables, e.g. REFUGE_CONNECT_SERVER_PORT
	v.SetEnvPrefix("REFUGE_CONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(c.Log.Level),
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
