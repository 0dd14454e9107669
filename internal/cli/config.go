package cli

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the rolas configuration from rolas.yaml.
type Config struct {
	// Schema is the SQL file creating the music-library tables.
	Schema string `mapstructure:"schema" json:"schema"`

	Database DatabaseConfig `mapstructure:"database" json:"database"`

	// Per-command configuration
	Query   QueryConfig   `mapstructure:"query" json:"query"`
	Migrate MigrateConfig `mapstructure:"migrate" json:"migrate"`
	Doctor  DoctorConfig  `mapstructure:"doctor" json:"doctor"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// Driver is the database/sql driver: postgres, pgx or sqlite.
	Driver   string `mapstructure:"driver" json:"driver"`
	URL      string `mapstructure:"url" json:"url"`
	Host     string `mapstructure:"host" json:"host"`
	Port     int    `mapstructure:"port" json:"port"`
	Name     string `mapstructure:"name" json:"name"`
	User     string `mapstructure:"user" json:"user"`
	Password string `mapstructure:"password" json:"password,omitempty"`
	SSLMode  string `mapstructure:"sslmode" json:"sslmode"`
}

// QueryConfig holds query building settings.
type QueryConfig struct {
	// LegacyWhere only renders WHERE for two or more conditionals.
	LegacyWhere    bool `mapstructure:"legacy_where" json:"legacy_where"`
	EscapeLiterals bool `mapstructure:"escape_literals" json:"escape_literals"`
}

// MigrateConfig holds migration settings.
type MigrateConfig struct {
	Schema string `mapstructure:"schema" json:"schema"`
	DryRun bool   `mapstructure:"dry_run" json:"dry_run"`
	Force  bool   `mapstructure:"force" json:"force"`
}

// DoctorConfig holds doctor command settings.
type DoctorConfig struct {
	Verbose bool `mapstructure:"verbose" json:"verbose"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("ROLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schema", "tables.sql")

	// Database defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslmode", "prefer")

	// Query defaults
	v.SetDefault("query.legacy_where", false)
	v.SetDefault("query.escape_literals", false)

	// Migrate defaults
	v.SetDefault("migrate.schema", "")
	v.SetDefault("migrate.dry_run", false)
	v.SetDefault("migrate.force", false)

	// Doctor defaults
	v.SetDefault("doctor.verbose", false)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for rolas.yaml or rolas.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"rolas.yaml", "rolas.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}

// DSN returns the database connection string.
// If database.url is set, it's returned directly. For sqlite the database
// name is used as the file path. Otherwise a postgres:// URL is built from
// discrete fields.
func (c *Config) DSN() (string, error) {
	db := c.Database

	if db.URL != "" {
		return db.URL, nil
	}

	if db.Driver == "sqlite" {
		if db.Name == "" {
			return "", fmt.Errorf("database.name is required for sqlite when database.url is not set")
		}
		return db.Name, nil
	}

	if db.Host == "" {
		return "", fmt.Errorf("database.host is required when database.url is not set")
	}
	if db.Name == "" {
		return "", fmt.Errorf("database.name is required when database.url is not set")
	}
	if db.User == "" {
		return "", fmt.Errorf("database.user is required when database.url is not set")
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   "/" + db.Name,
	}

	if db.Password != "" {
		u.User = url.UserPassword(db.User, db.Password)
	} else {
		u.User = url.User(db.User)
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// ResolvedSchema returns the effective schema path for migrate, with
// migrate.schema taking precedence over the top-level schema.
func (c *Config) ResolvedSchema() string {
	if c.Migrate.Schema != "" {
		return c.Migrate.Schema
	}
	return c.Schema
}
