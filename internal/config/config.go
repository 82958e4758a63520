package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete server configuration.
// Precedence: environment, then the optional YAML file, then defaults.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	N8N       N8NConfig       `yaml:"n8n"`
	CSVImport CSVImportConfig `yaml:"csv_import"`
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Environment  string        `yaml:"environment"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	AllowOrigins []string      `yaml:"allow_origins"`
}

type DatabaseConfig struct {
	URL          string `yaml:"url"`
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	Name         string `yaml:"name"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type N8NConfig struct {
	URL           string        `yaml:"url"`
	APIKey        string        `yaml:"api_key"`
	HealthTimeout time.Duration `yaml:"health_timeout"`
	StartTimeout  time.Duration `yaml:"start_timeout"`
}

type CSVImportConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         "3001",
			Environment:  "development",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
			AllowOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         "5432",
			Name:         "transcript_db",
			User:         "postgres",
			Password:     "password",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 1,
		},
		N8N: N8NConfig{
			URL:           "http://n8n:5678",
			HealthTimeout: 5 * time.Second,
			StartTimeout:  10 * time.Second,
		},
		CSVImport: CSVImportConfig{
			URL:     "http://csv-import:5000",
			Timeout: 60 * time.Second,
		},
	}
}

// Load builds the configuration. path may be empty, in which case CONFIG_FILE
// is consulted; no file at all is fine.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.mergeFile(os.ExpandEnv(path)); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error

	c.Server.Host = getEnvOrDefault("HOST", c.Server.Host)
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.Environment = getEnvOrDefault("APP_ENV", c.Server.Environment)
	c.Server.AllowOrigins = getEnvList("CORS_ALLOW_ORIGINS", c.Server.AllowOrigins)
	if c.Server.ReadTimeout, err = getEnvDuration("HTTP_READ_TIMEOUT", c.Server.ReadTimeout); err != nil {
		return err
	}
	if c.Server.WriteTimeout, err = getEnvDuration("HTTP_WRITE_TIMEOUT", c.Server.WriteTimeout); err != nil {
		return err
	}

	c.Database.URL = getEnvOrDefault("DATABASE_URL", c.Database.URL)
	c.Database.Host = getEnvOrDefault("POSTGRES_HOST", c.Database.Host)
	c.Database.Port = getEnvOrDefault("POSTGRES_PORT", c.Database.Port)
	c.Database.Name = getEnvOrDefault("POSTGRES_DB", c.Database.Name)
	c.Database.User = getEnvOrDefault("POSTGRES_USER", c.Database.User)
	c.Database.Password = getEnvOrDefault("POSTGRES_PASSWORD", c.Database.Password)
	c.Database.SSLMode = getEnvOrDefault("POSTGRES_SSLMODE", c.Database.SSLMode)
	if c.Database.MaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns); err != nil {
		return err
	}
	if c.Database.MaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns); err != nil {
		return err
	}

	c.N8N.URL = getEnvOrDefault("N8N_URL", c.N8N.URL)
	c.N8N.APIKey = getEnvOrDefault("N8N_API_KEY", c.N8N.APIKey)
	c.CSVImport.URL = getEnvOrDefault("CSV_IMPORT_URL", c.CSVImport.URL)
	return nil
}

// Validate fails fast on settings the server cannot start with
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.ReadTimeout, "read"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.Server.WriteTimeout, "write"); err != nil {
		return err
	}
	if err := ValidatePoolSize(c.Database.MaxOpenConns, c.Database.MaxIdleConns); err != nil {
		return err
	}
	if err := ValidateURL(c.N8N.URL, "n8n"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.N8N.HealthTimeout, "n8n health"); err != nil {
		return err
	}
	if err := ValidateTimeout(c.N8N.StartTimeout, "n8n start"); err != nil {
		return err
	}
	return ValidateURL(c.CSVImport.URL, "csv import")
}

// IsProduction reports whether the server runs in release mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
