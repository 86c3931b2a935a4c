package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout          = 30
	defaultAddress          = ":9090"
	defaultCacheDB          = 0
	defaultBloomBitSize     = 10000000
	defaultSimilarityCron   = "0 3 * * *"
	defaultSimilarityBatch  = 500
	defaultLockTTL          = 30 * time.Minute
	defaultViewsSyncSeconds = 10
	defaultBloomRefreshSecs = 60
	defaultBackendURL       = "http://localhost:9090"
)

type Database struct {
	Host string `validate:"required"`
	Port string `validate:"required"`
	User string `validate:"required"`
	Pass string
	Name string `validate:"required"`
}

type Cache struct {
	Host string `validate:"required"`
	Port string `validate:"required"`
	Pass string
	DB   int `validate:"gte=0"`
}

type Similarity struct {
	Cron       string `validate:"required"`
	ActiveOnly bool
	// MaxUsers caps the users a rebuild may pair up, 0 disables the cap.
	MaxUsers  int           `validate:"gte=0"`
	BatchSize int           `validate:"gt=0"`
	LockTTL   time.Duration `validate:"gt=0"`
}

type Config struct {
	Database       Database
	Cache          Cache
	Similarity     Similarity
	ServerAddress  string        `validate:"required"`
	ContextTimeout time.Duration `validate:"gt=0"`
	JWTSecret      string        `validate:"required"`
	UpdateSecret   string        `validate:"required"`
	BloomBitSize   uint64        `validate:"gt=0"`
	ViewsSync      time.Duration `validate:"gt=0"`
	BloomRefresh   time.Duration `validate:"gt=0"`
	LogLevel       string        `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	LogFormat      string        `validate:"omitempty,oneof=text json"`
	CORSOrigins    []string
}

// Client is what similarityctl needs to reach a running server.
type Client struct {
	BackendURL   string `validate:"required,url"`
	UpdateSecret string
}

// Load reads .env (if present) and the process environment, then validates the result.
// A missing secret is reported as an error; callers are expected to stop.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Database: Database{
			Host: getenv("DATABASE_HOST"),
			Port: getenv("DATABASE_PORT"),
			User: getenv("DATABASE_USER"),
			Pass: getenv("DATABASE_PASS"),
			Name: getenv("DATABASE_NAME"),
		},
		Cache: Cache{
			Host: getenv("CACHE_HOST"),
			Port: getenv("CACHE_PORT"),
			Pass: getenv("CACHE_PASS"),
			DB:   intOr(getenv("CACHE_DB"), defaultCacheDB),
		},
		Similarity: Similarity{
			Cron:       stringOr(getenv("SIMILARITY_CRON"), defaultSimilarityCron),
			ActiveOnly: boolOr(getenv("SIMILARITY_ACTIVE_ONLY"), false),
			MaxUsers:   intOr(getenv("SIMILARITY_MAX_USERS"), 0),
			BatchSize:  intOr(getenv("SIMILARITY_BATCH_SIZE"), defaultSimilarityBatch),
			LockTTL:    durationOr(getenv("SIMILARITY_LOCK_TTL"), defaultLockTTL),
		},
		ServerAddress:  stringOr(getenv("SERVER_ADDRESS"), defaultAddress),
		ContextTimeout: time.Duration(intOr(getenv("CONTEXT_TIMEOUT"), defaultTimeout)) * time.Second,
		JWTSecret:      getenv("JWT_SECRET"),
		UpdateSecret:   getenv("UPDATE_SECRET"),
		BloomBitSize:   uint64(intOr(getenv("BLOOM_FILTER_SIZE"), defaultBloomBitSize)),
		ViewsSync:      time.Duration(intOr(getenv("VIEWS_SYNC_INTERVAL"), defaultViewsSyncSeconds)) * time.Second,
		BloomRefresh:   time.Duration(intOr(getenv("BLOOM_REFRESH_INTERVAL"), defaultBloomRefreshSecs)) * time.Second,
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL")),
		LogFormat:      strings.ToLower(getenv("LOG_FORMAT")),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS")),
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ClientFromEnv builds the admin client config. Values already set, e.g. from
// command line flags, win over the environment.
func ClientFromEnv(c Client, getenv func(string) string) (*Client, error) {
	c.BackendURL = stringOr(c.BackendURL, stringOr(getenv("BACKEND_URL"), defaultBackendURL))
	c.UpdateSecret = stringOr(c.UpdateSecret, getenv("UPDATE_SECRET"))
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}
	return &c, nil
}

// MySQLDSN builds the go-sql-driver DSN.
func (d Database) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC", d.User, d.Pass, d.Host, d.Port, d.Name)
}

func (c Cache) Addr() string {
	return c.Host + ":" + c.Port
}

// SetupLogger applies level and formatter to the standard logrus logger.
func (c *Config) SetupLogger() {
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(stringOr(c.LogLevel, "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOr(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("failed to parse %q as int, using default %d", v, def)
		return def
	}
	return n
}

func boolOr(v string, def bool) bool {
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.Warnf("failed to parse %q as bool, using default %t", v, def)
		return def
	}
	return b
}

func durationOr(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("failed to parse %q as duration, using default %s", v, def)
		return def
	}
	return d
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
