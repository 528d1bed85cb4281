package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// BatchRule describes how a batch membership is named for one auth group.
// Template may contain a "{grade}" placeholder; Grades limits which grades
// the rule applies to (empty means every grade).
type BatchRule struct {
	Template string   `yaml:"template"`
	Grades   []string `yaml:"grades"`
}

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string   `yaml:"port" env:"SERVER_PORT"`
		Mode        string   `yaml:"mode" env:"SERVER_MODE"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	DBService struct {
		BaseURL string `yaml:"base_url" env:"DB_SERVICE_URL"`
		Token   string `yaml:"token" env:"DB_SERVICE_TOKEN"`
		Timeout string `yaml:"timeout" env:"DB_SERVICE_TIMEOUT"`
	} `yaml:"db_service"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET_KEY"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		OrgTokenExpiration     string `yaml:"org_token_expiration" env:"JWT_ORG_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Registration struct {
		IDRetryBudget       int                  `yaml:"id_retry_budget" env:"ID_RETRY_BUDGET"`
		DefaultAcademicYear string               `yaml:"default_academic_year" env:"DEFAULT_ACADEMIC_YEAR"`
		BatchRules          map[string]BatchRule `yaml:"batch_rules"`
	} `yaml:"registration"`

	SQS struct {
		QueueURL  string `yaml:"queue_url" env:"AWS_SQS_URL"`
		Region    string `yaml:"region" env:"AWS_SQS_REGION"`
		AccessKey string `yaml:"access_key" env:"SQS_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"SQS_SECRET_ACCESS_KEY"`
	} `yaml:"sqs"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional, env vars can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Environment variables take precedence over the file
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.CORSOrigins = []string{
		"http://localhost:8080",
		"http://localhost:3000",
	}

	config.DBService.Timeout = "60s"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.RefreshTokenExpiration = "720h"
	// Organization tokens are long-lived service credentials (260 weeks)
	config.JWT.OrgTokenExpiration = "43680h"
	config.JWT.Issuer = "portal.app"

	config.Registration.IDRetryBudget = 1000
	config.Registration.DefaultAcademicYear = "2025-2026"
	config.Registration.BatchRules = map[string]BatchRule{
		"HimachalStudents": {Template: "HP-{grade}-Selection-25", Grades: []string{"9", "10", "11", "12"}},
		"AllIndiaStudents": {Template: "AllIndiaStudents_{grade}_24_A001", Grades: []string{"11", "12"}},
		"HiringCandidates": {Template: "H-CN-25"},
	}

	config.SQS.Region = "ap-south-1"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.DBService.BaseURL == "" {
		return fmt.Errorf("db service base URL is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Registration.IDRetryBudget <= 0 {
		return fmt.Errorf("id retry budget must be positive")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT refresh token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.DBService.Timeout); err != nil {
		return fmt.Errorf("invalid db service timeout format: %w", err)
	}

	return nil
}

// DBServiceTimeout returns the parsed outbound call timeout.
func (c *Config) DBServiceTimeout() time.Duration {
	d, err := time.ParseDuration(c.DBService.Timeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(GetEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	if valueStr == "true" || valueStr == "1" || valueStr == "yes" {
		return true
	}
	if valueStr == "false" || valueStr == "0" || valueStr == "no" {
		return false
	}
	return defaultValue
}
