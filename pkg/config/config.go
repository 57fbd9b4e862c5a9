package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is applied to every envconfig lookup.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
	Catalog      CatalogConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"NEXTPLAY_APP_ENV" required:"true"`
	Port         string `envconfig:"NEXTPLAY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"NEXTPLAY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"NEXTPLAY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"NEXTPLAY_DB_DSN"`
	Driver string `envconfig:"NEXTPLAY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"NEXTPLAY_DB_HOST"`
	LegacyPort     int    `envconfig:"NEXTPLAY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"NEXTPLAY_DB_USER"`
	LegacyPassword string `envconfig:"NEXTPLAY_DB_PASSWORD"`
	LegacyName     string `envconfig:"NEXTPLAY_DB_NAME"`
	LegacySSLMode  string `envconfig:"NEXTPLAY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"NEXTPLAY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"NEXTPLAY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"NEXTPLAY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"NEXTPLAY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a DSN from the legacy host/user parts when one is not
// provided directly.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.LegacyHost == "" || d.LegacyUser == "" || d.LegacyName == "" {
		return fmt.Errorf("database config requires NEXTPLAY_DB_DSN or host/user/name parts")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.LegacyUser, d.LegacyPassword),
		Host:   fmt.Sprintf("%s:%d", d.LegacyHost, d.LegacyPort),
		Path:   d.LegacyName,
	}
	q := u.Query()
	q.Set("sslmode", d.LegacySSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"NEXTPLAY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"NEXTPLAY_REDIS_ADDR"`
	Password     string        `envconfig:"NEXTPLAY_REDIS_PASSWORD"`
	DB           int           `envconfig:"NEXTPLAY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"NEXTPLAY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"NEXTPLAY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"NEXTPLAY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"NEXTPLAY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"NEXTPLAY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig controls how long an idle cart survives between visits.
type CartConfig struct {
	TTL time.Duration `envconfig:"NEXTPLAY_CART_TTL" default:"720h"`
}

// CheckoutConfig bounds the per-cart submission lock and checkout idempotency.
type CheckoutConfig struct {
	SubmissionLockTTL time.Duration `envconfig:"NEXTPLAY_CHECKOUT_LOCK_TTL" default:"30s"`
	IdempotencyTTL    time.Duration `envconfig:"NEXTPLAY_CHECKOUT_IDEMPOTENCY_TTL" default:"168h"`
}

// CatalogConfig caps related-product fan-out.
type CatalogConfig struct {
	RelatedLimit    int `envconfig:"NEXTPLAY_CATALOG_RELATED_LIMIT" default:"4"`
	RelatedMaxLimit int `envconfig:"NEXTPLAY_CATALOG_RELATED_MAX_LIMIT" default:"12"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"NEXTPLAY_FEATURE_AUTO_MIGRATE" default:"false"`
}
