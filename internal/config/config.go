package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

type Config struct {
	Port string

	DbDriver  string // postgres|mysql|memory
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	RedisAddr string
	RedisPass string
	RedisDB   int
	CacheTTL  time.Duration

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig loads .env, reads the environment and applies defaults.
// It does not log: the logger is built from its result.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	driver := strings.ToLower(def(os.Getenv("DB_DRIVER"), DriverPostgres))
	defaultPort := "5432"
	if driver == DriverMySQL {
		defaultPort = "3306"
	}

	redisDB, err := strconv.Atoi(def(os.Getenv("REDIS_DB"), "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	cacheTTL, err := time.ParseDuration(def(os.Getenv("CACHE_TTL"), "5m"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		DbDriver:  driver,
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), defaultPort),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   redisDB,
		CacheTTL:  cacheTTL,

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	return cfg, nil
}

// Validate returns warnings and a fatal error when the config cannot work.
func (c *Config) Validate() (warnings []string, err error) {
	switch c.DbDriver {
	case DriverPostgres, DriverMySQL:
		if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
			return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
		}
	case DriverMemory:
		warnings = append(warnings, "DB_DRIVER=memory: data is lost on restart")
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", c.DbDriver)
	}

	if c.RedisAddr == "" {
		warnings = append(warnings, "REDIS_ADDR is empty, article cache disabled")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN is the full postgres DSN, password included.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe is the DSN for logs.
func (c *Config) GetDSNSafe() string {
	if c.DbDriver == DriverMySQL {
		return fmt.Sprintf("%s:***@tcp(%s:%s)/%s", c.DbUser, c.DbHost, c.DbPort, c.DbName)
	}
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func (c *Config) GetMySQLDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC&clientFoundRows=true",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName,
	)
}
