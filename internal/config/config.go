package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port             string   `mapstructure:"PORT"`
	Env              string   `mapstructure:"ENV"`
	LogLevel         string   `mapstructure:"LOG_LEVEL"`
	DBDriver         string   `mapstructure:"DB_DRIVER"`
	DBHost           string   `mapstructure:"DB_HOST"`
	DBPort           string   `mapstructure:"DB_PORT"`
	DBUser           string   `mapstructure:"DB_USER"`
	DBPassword       string   `mapstructure:"DB_PASSWORD"`
	DBName           string   `mapstructure:"DB_NAME"`
	RedisAddr        string   `mapstructure:"REDIS_ADDR"`
	RedisPassword    string   `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int      `mapstructure:"REDIS_DB"`
	JWTAccessSecret  string   `mapstructure:"JWT_ACCESS_SECRET"`
	JWTRefreshSecret string   `mapstructure:"JWT_REFRESH_SECRET"`
	CORSOrigins      []string `mapstructure:"CORS_ORIGINS"`
	SeedSampleQueue  bool     `mapstructure:"SEED_SAMPLE_QUEUE"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET",
	"CORS_ORIGINS", "SEED_SAMPLE_QUEUE",
}

// Load reads the environment, after merging in envFiles (".env" when none are
// given). Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SEED_SAMPLE_QUEUE", false)

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CORSOrigins = splitList(strings.Join(cfg.CORSOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DBDriver != "postgres" && c.DBDriver != "mysql" {
		return fmt.Errorf("DB_DRIVER must be \"postgres\" or \"mysql\", got %q", c.DBDriver)
	}
	if c.DBName == "" {
		return errors.New("DB_NAME is required")
	}
	if c.JWTAccessSecret == "" || c.JWTRefreshSecret == "" {
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
	}
	if c.JWTAccessSecret == c.JWTRefreshSecret {
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
