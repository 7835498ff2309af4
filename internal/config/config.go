package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Geocoding GeocodingConfig
	HTTP      HTTPConfig
	Breaker   BreakerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int    `validate:"min=1,max=65535"`
	GinMode string `validate:"oneof=debug release test"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds dashboard configuration
type AppConfig struct {
	ForecastDays int    `validate:"min=1,max=16"` // Number of daily rows to render
	DefaultCity  string `validate:"required"`
	DefaultUnit  string `validate:"oneof=C F c f"`
	About        string
}

// GeocodingConfig holds city search configuration
type GeocodingConfig struct {
	Language string `validate:"required"`
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration `validate:"gt=0"`
}

// BreakerConfig holds circuit breaker settings shared by upstream clients
type BreakerConfig struct {
	MaxFailures uint32        `validate:"min=1"`
	Timeout     time.Duration `validate:"gt=0"`
}

const defaultAbout = "weather-dash shows current conditions and a five day forecast for any city. " +
	"Weather data by Open-Meteo.com, geocoding by Open-Meteo and OpenStreetMap Nominatim."

// Load reads configuration from .env, the config file and environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-dash")

	setDefaults(v)

	// Read from environment variables, e.g. WEATHER_DASH_SERVER_PORT
	v.SetEnvPrefix("WEATHER_DASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.forecastdays", 5)
	v.SetDefault("app.defaultcity", "New York")
	v.SetDefault("app.defaultunit", "C")
	v.SetDefault("app.about", defaultAbout)
	v.SetDefault("geocoding.language", "en")
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("breaker.maxfailures", 5)
	v.SetDefault("breaker.timeout", 30*time.Second)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and normalizes the geocoding language to
// its base ISO 639 code
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	tag, err := language.Parse(c.Geocoding.Language)
	if err != nil {
		return fmt.Errorf("invalid config: geocoding language %q: %w", c.Geocoding.Language, err)
	}
	base, _ := tag.Base()
	c.Geocoding.Language = base.String()

	c.App.DefaultUnit = strings.ToUpper(c.App.DefaultUnit)

	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
