// Package config loads the essaygrader settings from defaults, an optional
// YAML file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults match the hosted Groq endpoint.
const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultCallTimeout = 60 * time.Second
	DefaultLogLevel    = "INFO"
	DefaultLogFormat   = "compact"
)

// Environment variables read by Load. The first non-empty key of each list
// wins.
var (
	EnvAPIKey      = []string{"GRADER_API_KEY", "GROQ_API_KEY"}
	EnvBaseURL     = []string{"GRADER_BASE_URL"}
	EnvModel       = []string{"GRADER_MODEL"}
	EnvTemperature = []string{"GRADER_TEMPERATURE"}
	EnvCallTimeout = []string{"GRADER_CALL_TIMEOUT"}
	EnvMaxRetries  = []string{"GRADER_MAX_RETRIES"}
	EnvLogLevel    = []string{"GRADER_LOG_LEVEL", "LOG_LEVEL"}
	EnvLogFormat   = []string{"GRADER_LOG_FORMAT", "LOG_FORMAT"}
	EnvLogRequests = []string{"GRADER_LOG_REQUESTS"}
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything the CLI needs to build a grader.
type Config struct {
	APIKey      string        `yaml:"api_key" validate:"required"`
	BaseURL     string        `yaml:"base_url" validate:"required,url"`
	Model       string        `yaml:"model" validate:"required"`
	Temperature float32       `yaml:"temperature" validate:"gte=0,lte=2"`
	CallTimeout time.Duration `yaml:"call_timeout" validate:"gt=0"`
	MaxRetries  int           `yaml:"max_retries" validate:"gte=0,lte=10"`

	LogLevel  string `yaml:"log_level" validate:"oneof=TRACE DEBUG INFO WARN WARNING ERROR"`
	LogFormat string `yaml:"log_format" validate:"oneof=compact pretty json"`
	// LogRequests adds a per-request log line for every LLM call. Valid
	// values are "", "minimal", "standard" and "verbose".
	LogRequests string `yaml:"log_requests" validate:"omitempty,oneof=minimal standard verbose"`

	// Token prices in USD per million. When both are zero the published
	// rate of Model is used, if known.
	InputCostPerMillion  float64 `yaml:"input_cost_per_million" validate:"gte=0"`
	OutputCostPerMillion float64 `yaml:"output_cost_per_million" validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Default returns the built-in settings. APIKey is empty.
func Default() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: 0,
		CallTimeout: DefaultCallTimeout,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := lookupEnv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := lookupEnv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := lookupEnv(EnvModel); v != "" {
		c.Model = v
	}
	if v := lookupEnv(EnvTemperature); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTemperature[0], err)
		}
		c.Temperature = float32(f)
	}
	if v := lookupEnv(EnvCallTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCallTimeout[0], err)
		}
		c.CallTimeout = d
	}
	if v := lookupEnv(EnvMaxRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxRetries[0], err)
		}
		c.MaxRetries = n
	}
	if v := lookupEnv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := lookupEnv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := lookupEnv(EnvLogRequests); v != "" {
		c.LogRequests = v
	}
	return nil
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.LogRequests = strings.ToLower(strings.TrimSpace(c.LogRequests))
}

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func lookupEnv(keys []string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
