package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv      string         `yaml:"app_env"`
	Port        string         `yaml:"port"`
	DB          DatabaseConfig `yaml:"database"`
	RedisAddr   string         `yaml:"redis_addr"`
	KafkaBroker string         `yaml:"kafka_broker"`
	Auth        AuthConfig     `yaml:"auth"`
	CORSOrigins []string       `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Host       string `yaml:"host"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	Port       string `yaml:"port"`
	SSLMode    string `yaml:"sslmode"`
	MaxRetries int    `yaml:"max_retries"`
}

type AuthConfig struct {
	// JWTSecret is the HMAC key. Empty means a random key is generated at start,
	// so every restart invalidates outstanding tokens.
	JWTSecret       string        `yaml:"jwt_secret"`
	TokenTTL        time.Duration `yaml:"token_ttl"`
	LoginRatePerSec float64       `yaml:"login_rate_per_sec"`
	LoginBurst      int           `yaml:"login_burst"`
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (if present), then the environment, then the optional YAML file
// at path. Later sources win.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		DB: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       getEnv("DB_NAME", "erp"),
			Port:       getEnv("DB_PORT", "5432"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvInt("DB_MAX_RETRIES", 5),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		Auth: AuthConfig{
			JWTSecret:       os.Getenv("JWT_SECRET"),
			TokenTTL:        getEnvDuration("JWT_TTL", 24*time.Hour),
			LoginRatePerSec: getEnvFloat("LOGIN_RATE_PER_SEC", 0.2),
			LoginBurst:      getEnvInt("LOGIN_BURST", 5),
		},
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("auth token ttl must be positive, got %s", cfg.Auth.TokenTTL)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
