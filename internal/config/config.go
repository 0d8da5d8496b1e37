package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Process roles. RoleAll runs catalog and enrollment in one process sharing one store.
const (
	RoleCatalog    = "catalog"
	RoleEnrollment = "enrollment"
	RoleAll        = "all"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string   `yaml:"port" env:"SERVER_PORT"`
		Mode         string   `yaml:"mode" env:"SERVER_MODE"`
		Role         string   `yaml:"role" env:"SERVER_ROLE"`
		CORSOrigins  []string `yaml:"cors_origins" env:"SERVER_CORS_ORIGINS"`
		ReadTimeout  string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		AutoMigrate     bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
	} `yaml:"database"`

	Catalog struct {
		BaseURL       string `yaml:"base_url" env:"CATALOG_BASE_URL"`
		Timeout       string `yaml:"timeout" env:"CATALOG_TIMEOUT"`
		DeletePolicy  string `yaml:"delete_policy" env:"CATALOG_DELETE_POLICY"`
		ConflictScope string `yaml:"conflict_scope" env:"CATALOG_CONFLICT_SCOPE"`
	} `yaml:"catalog"`

	Enrollment struct {
		AllowReenroll     bool   `yaml:"allow_reenroll" env:"ENROLLMENT_ALLOW_REENROLL"`
		ReconcileInterval string `yaml:"reconcile_interval" env:"ENROLLMENT_RECONCILE_INTERVAL"`
		ReconcileWorkers  int    `yaml:"reconcile_workers" env:"ENROLLMENT_RECONCILE_WORKERS"`
	} `yaml:"enrollment"`

	ServiceAuth struct {
		Secret   string `yaml:"secret" env:"SERVICE_AUTH_SECRET"`
		Issuer   string `yaml:"issuer" env:"SERVICE_AUTH_ISSUER"`
		TokenTTL string `yaml:"token_ttl" env:"SERVICE_AUTH_TOKEN_TTL"`
	} `yaml:"service_auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables.
// A .env file in the working directory, when present, is loaded into the environment first.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	config.normalize()

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.Role = RoleAll
	config.Server.CORSOrigins = []string{"*"}
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"

	// Database defaults
	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campus"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.AutoMigrate = true

	// Catalog defaults
	config.Catalog.BaseURL = "http://localhost:8081"
	config.Catalog.Timeout = "3s"
	config.Catalog.DeletePolicy = "refuse_if_referenced"
	config.Catalog.ConflictScope = "global"

	// Enrollment defaults
	config.Enrollment.AllowReenroll = true
	config.Enrollment.ReconcileInterval = "0s"
	config.Enrollment.ReconcileWorkers = 4

	// Service auth defaults; an empty secret disables service tokens
	config.ServiceAuth.Issuer = "campus.catalog"
	config.ServiceAuth.TokenTTL = "5m"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// normalize lowercases the enumerated settings.
func (c *Config) normalize() {
	c.Server.Role = strings.ToLower(strings.TrimSpace(c.Server.Role))
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Catalog.DeletePolicy = strings.ToLower(strings.TrimSpace(c.Catalog.DeletePolicy))
	c.Catalog.ConflictScope = strings.ToLower(strings.TrimSpace(c.Catalog.ConflictScope))
	c.Catalog.BaseURL = strings.TrimRight(c.Catalog.BaseURL, "/")
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Server.Role {
	case RoleCatalog, RoleEnrollment, RoleAll:
	default:
		return fmt.Errorf("server role must be one of catalog, enrollment, all (got %q)", config.Server.Role)
	}

	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("database driver must be postgres or memory (got %q)", config.Database.Driver)
	}

	if config.Server.Role == RoleEnrollment && config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base_url is required for the enrollment role")
	}

	// Split roles expose the seat-count and reconcile endpoints across the network.
	if config.Server.Role != RoleAll && config.ServiceAuth.Secret == "" {
		return fmt.Errorf("service_auth.secret is required for the %s role", config.Server.Role)
	}

	switch config.Catalog.DeletePolicy {
	case "refuse_if_referenced", "allow":
	default:
		return fmt.Errorf("catalog delete_policy must be refuse_if_referenced or allow (got %q)", config.Catalog.DeletePolicy)
	}

	switch config.Catalog.ConflictScope {
	case "global", "instructor":
	default:
		return fmt.Errorf("catalog conflict_scope must be global or instructor (got %q)", config.Catalog.ConflictScope)
	}

	durations := map[string]string{
		"server.read_timeout":           config.Server.ReadTimeout,
		"server.write_timeout":          config.Server.WriteTimeout,
		"database.conn_max_lifetime":    config.Database.ConnMaxLifetime,
		"catalog.timeout":               config.Catalog.Timeout,
		"enrollment.reconcile_interval": config.Enrollment.ReconcileInterval,
		"service_auth.token_ttl":        config.ServiceAuth.TokenTTL,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s duration %q: %w", name, value, err)
		}
	}

	return nil
}

// Validate normalizes and re-checks the configuration after a programmatic change,
// such as a role override from the command line.
func (c *Config) Validate() error {
	c.normalize()
	if err := validateConfig(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ServesCatalog reports whether the role mounts the course endpoints.
func (c *Config) ServesCatalog() bool {
	return c.Server.Role == RoleCatalog || c.Server.Role == RoleAll
}

// ServesEnrollment reports whether the role mounts the student and enrollment endpoints.
func (c *Config) ServesEnrollment() bool {
	return c.Server.Role == RoleEnrollment || c.Server.Role == RoleAll
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
