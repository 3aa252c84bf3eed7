package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ENV_PROD = "prod"

// Config is the runtime configuration, injected once into the container.
// API keys are intentionally not validated here; a missing key fails at first use.
type Config struct {
	Env       string          `mapstructure:"env" validate:"required"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Here      HereConfig      `mapstructure:"here"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Nominatim NominatimConfig `mapstructure:"nominatim"`
	Review    ReviewConfig    `mapstructure:"review"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type HereConfig struct {
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url" validate:"required,url"`
	ResultLimit int    `mapstructure:"result_limit" validate:"gte=1,lte=100"`

	// Concurrency bounds in-flight category searches. 1 keeps them sequential.
	Concurrency int `mapstructure:"concurrency" validate:"gte=1"`

	// RatePerSecond throttles discover calls. 0 disables throttling.
	RatePerSecond float64       `mapstructure:"rate_per_second" validate:"gte=0"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Model   string        `mapstructure:"model" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type NominatimConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	UserAgent string        `mapstructure:"user_agent" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type ReviewConfig struct {
	Language string `mapstructure:"language" validate:"required"`
}

// IsProd reports whether real upstream clients should be wired.
func (c *Config) IsProd() bool {
	return c.Env == ENV_PROD
}

// Load reads .env, an optional config.yaml from configPaths (defaults to
// "./configs" and "."), and environment overrides such as HERE_API_KEY.
func Load(configPaths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{"./configs", "."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("env", "APP_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ENV: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("server.address", SERVER_DEFAULT_ADDRESS)
	v.SetDefault("server.request_timeout", SERVER_DEFAULT_REQUEST_TIMEOUT)
	v.SetDefault("server.shutdown_timeout", SERVER_DEFAULT_SHUTDOWN_TIMEOUT)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("here.api_key", "")
	v.SetDefault("here.base_url", HERE_DISCOVER_ENDPOINT_BASE_V1)
	v.SetDefault("here.result_limit", HERE_DISCOVER_RESULT_LIMIT)
	v.SetDefault("here.concurrency", HERE_DEFAULT_CONCURRENCY)
	v.SetDefault("here.rate_per_second", 0.0)
	v.SetDefault("here.timeout", HERE_DEFAULT_TIMEOUT)

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", OPENAI_ENDPOINT_BASE_V1)
	v.SetDefault("openai.model", OPENAI_DEFAULT_MODEL)
	v.SetDefault("openai.timeout", OPENAI_DEFAULT_TIMEOUT)

	v.SetDefault("nominatim.base_url", NOMINATIM_ENDPOINT_BASE)
	v.SetDefault("nominatim.user_agent", NOMINATIM_DEFAULT_USER_AGENT)
	v.SetDefault("nominatim.timeout", NOMINATIM_DEFAULT_TIMEOUT)

	v.SetDefault("review.language", REVIEW_DEFAULT_LANGUAGE)
}
