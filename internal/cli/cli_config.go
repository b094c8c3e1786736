package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nauticalab/tsconfig-engine/internal/extends"
	"github.com/nauticalab/tsconfig-engine/pkg/tsconfig"
)

// Environment variables read by LoadCLIConfig.
const (
	EnvTrailingCommas = "TSCONFIG_TRAILING_COMMAS"
	EnvOutput         = "TSCONFIG_OUTPUT"
	EnvServerPort     = "TSCONFIG_SERVER_PORT"
	EnvCacheSize      = "TSCONFIG_CACHE_SIZE"
)

// CLIConfig represents the configuration for the CLI
type CLIConfig struct {
	// TrailingCommas is the default trailing comma policy ("objects" or "all")
	TrailingCommas string `yaml:"trailingCommas" validate:"oneof=objects all"`
	// Output is the default output format of the show command
	Output string `yaml:"output" validate:"oneof=json yaml summary"`
	// ServerPort is the default port of the serve command
	ServerPort int `yaml:"serverPort" validate:"min=1,max=65535"`
	// CacheSize bounds the extends resolver's document cache
	CacheSize int `yaml:"cacheSize" validate:"min=1"`
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// DefaultCLIConfig returns the configuration used when nothing overrides it.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		TrailingCommas: string(tsconfig.TrailingCommasObjects),
		Output:         "json",
		ServerPort:     8080,
		CacheSize:      extends.DefaultCacheSize,
	}
}

// LoadCLIConfig loads configuration from multiple sources in order of precedence:
// 1. Flags (handled by caller)
// 2. Environment variables, including a .env file in the working directory
// 3. Config file (~/.tsconfig-engine/config.yaml)
func LoadCLIConfig() (*CLIConfig, error) {
	config := DefaultCLIConfig()

	// 1. Load from config file
	homeDir, err := os.UserHomeDir()
	if err == nil {
		if err := loadConfigFile(filepath.Join(homeDir, ".tsconfig-engine", "config.yaml"), config); err != nil {
			return nil, err
		}
	}

	// 2. Load .env without overriding variables already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// 3. Load from environment variables (override config file)
	if err := applyEnv(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadConfigFile(configPath string, config *CLIConfig) error {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return nil
}

func applyEnv(config *CLIConfig) error {
	if v := os.Getenv(EnvTrailingCommas); v != "" {
		config.TrailingCommas = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		config.Output = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvServerPort, v, err)
		}
		config.ServerPort = port
	}
	if v := os.Getenv(EnvCacheSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvCacheSize, v, err)
		}
		config.CacheSize = size
	}
	return nil
}

// Validate checks the configuration values.
func (c *CLIConfig) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationError(validationErrors)
		}
		return err
	}
	return nil
}

// ParserOptions returns the parser options selected by the configuration.
func (c *CLIConfig) ParserOptions() tsconfig.Options {
	return tsconfig.Options{TrailingCommas: tsconfig.TrailingCommaPolicy(c.TrailingCommas)}
}

// NewResolver creates an extends resolver using the configured cache size
// and parser options.
func (c *CLIConfig) NewResolver() (*extends.Resolver, error) {
	return extends.NewResolver(extends.Options{CacheSize: c.CacheSize, Parser: c.ParserOptions()})
}

// formatValidationError renders go-playground/validator errors as concise, user-facing text.
func formatValidationError(validationErrors validator.ValidationErrors) error {
	var errorMessages []string
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, formatFieldError(fieldError))
	}

	return fmt.Errorf("configuration validation failed:\n  - %s",
		strings.Join(errorMessages, "\n  - "))
}

// formatFieldError creates user-friendly error messages for field validation failures
func formatFieldError(fieldError validator.FieldError) string {
	fieldName := fieldError.Field()
	param := fieldError.Param()
	value := fieldError.Value()

	switch fieldError.Tag() {
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got '%v'", fieldName, param, value)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s, got '%v'", fieldName, param, value)
	case "max":
		return fmt.Sprintf("'%s' must be at most %s, got '%v'", fieldName, param, value)
	default:
		return fmt.Sprintf("'%s' failed validation '%s'", fieldName, fieldError.Tag())
	}
}
