package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/RMahshie/sada/internal/criteria"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Criteria CriteriaConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	Env             string        `validate:"required,oneof=dev test staging prod"`
	AllowedOrigins  []string      `validate:"dive,required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// CriteriaConfig holds the audibility criterion of each method.
// An empty expression disables the assessment for that method.
type CriteriaConfig struct {
	BBK string
	HS  string
}

// Expressions returns the criteria keyed by method name
func (c CriteriaConfig) Expressions() map[string]string {
	return map[string]string{
		"bbk": c.BBK,
		"hs":  c.HS,
	}
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BBK_CRITERION", criteria.DefaultBBK)
	viper.SetDefault("HS_CRITERION", criteria.DefaultHS)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "30s")

	// Environment variables override .env file values; an empty criterion disables it
	viper.AllowEmptyEnv(true)
	viper.AutomaticEnv()

	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	// Read .env file for the current environment if present
	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for _, key := range []string{
		"PORT", "ENVIRONMENT", "ALLOWED_ORIGINS", "LOG_LEVEL",
		"BBK_CRITERION", "HS_CRITERION", "SHUTDOWN_TIMEOUT",
	} {
		_ = viper.BindEnv(key)
	}

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = splitOrigins(viper.GetString("ALLOWED_ORIGINS"))
	config.Server.ShutdownTimeout = viper.GetDuration("SHUTDOWN_TIMEOUT")
	config.Logging.Level = strings.ToLower(viper.GetString("LOG_LEVEL"))
	config.Criteria.BBK = strings.TrimSpace(viper.GetString("BBK_CRITERION"))
	config.Criteria.HS = strings.TrimSpace(viper.GetString("HS_CRITERION"))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("env", config.Server.Env).
		Str("port", config.Server.Port).
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Msg("Configuration loaded")

	return &config, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
