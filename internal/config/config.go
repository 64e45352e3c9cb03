package config

import (
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	SeedFile    string `mapstructure:"SEED_FILE"`
	SeedOnStart bool   `mapstructure:"SEED_ON_START"`

	JWTSecret            string        `mapstructure:"JWT_SECRET"`
	AdminPasswordHash    string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	TokenTTL             time.Duration `mapstructure:"TOKEN_TTL"`
	MutationsRequireAuth bool          `mapstructure:"MUTATIONS_REQUIRE_AUTH"`

	Playground            bool `mapstructure:"PLAYGROUND"`
	GraphQLMaxDepth       int  `mapstructure:"GRAPHQL_MAX_DEPTH"`
	GraphQLMaxParallelism int  `mapstructure:"GRAPHQL_MAX_PARALLELISM"`
}

var AppConfig *Config

var defaults = map[string]any{
	"PORT":                    "8080",
	"GIN_MODE":                "debug",
	"STORE_DRIVER":            "memory",
	"DATABASE_URL":            "",
	"SEED_FILE":               "",
	"SEED_ON_START":           true,
	"JWT_SECRET":              "",
	"ADMIN_PASSWORD_HASH":     "",
	"TOKEN_TTL":               "24h",
	"MUTATIONS_REQUIRE_AUTH":  false,
	"PLAYGROUND":              true,
	"GRAPHQL_MAX_DEPTH":       10,
	"GRAPHQL_MAX_PARALLELISM": 10,
}

// Load reads the configuration from a .env file in dir and environment variables.
// Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read .env")
		}
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode into struct")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration from the working directory into AppConfig.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatalf("Unable to load config, %v", err)
	}
	AppConfig = cfg
}

// Validate checks combinations of settings that cannot work together.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "memory":
	case "postgres", "sqlite":
		if c.DatabaseURL == "" {
			return errors.Errorf("DATABASE_URL is required for STORE_DRIVER=%s", c.StoreDriver)
		}
	default:
		return errors.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.MutationsRequireAuth && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when MUTATIONS_REQUIRE_AUTH is set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}
