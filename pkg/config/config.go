package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Stripe   StripeConfig
	Shipping ShippingConfig
	Cart     CartConfig
	Checkout CheckoutConfig
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
	Env          string `envconfig:"WOOFINGOVEN_APP_ENV" default:"development"`
	Port         string `envconfig:"WOOFINGOVEN_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"WOOFINGOVEN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WOOFINGOVEN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WOOFINGOVEN_DB_DSN"`
	Driver string `envconfig:"WOOFINGOVEN_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WOOFINGOVEN_DB_HOST"`
	LegacyPort     int    `envconfig:"WOOFINGOVEN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WOOFINGOVEN_DB_USER"`
	LegacyPassword string `envconfig:"WOOFINGOVEN_DB_PASSWORD"`
	LegacyName     string `envconfig:"WOOFINGOVEN_DB_NAME"`
	LegacySSLMode  string `envconfig:"WOOFINGOVEN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WOOFINGOVEN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WOOFINGOVEN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WOOFINGOVEN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WOOFINGOVEN_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	UseSQLite   bool   `envconfig:"WOOFINGOVEN_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"WOOFINGOVEN_SQLITE_PATH" default:"woofingoven.db"`
	AutoMigrate bool   `envconfig:"WOOFINGOVEN_AUTO_MIGRATE" default:"true"`
	SeedCatalog bool   `envconfig:"WOOFINGOVEN_SEED_CATALOG" default:"true"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WOOFINGOVEN_REDIS_URL"`
	Address      string        `envconfig:"WOOFINGOVEN_REDIS_ADDR"`
	Password     string        `envconfig:"WOOFINGOVEN_REDIS_PASSWORD"`
	DB           int           `envconfig:"WOOFINGOVEN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WOOFINGOVEN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WOOFINGOVEN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WOOFINGOVEN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WOOFINGOVEN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WOOFINGOVEN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type StripeConfig struct {
	SecretKey string `envconfig:"WOOFINGOVEN_STRIPE_SECRET_KEY"`
	// BaseURL is the storefront origin used for success/cancel redirects.
	BaseURL string `envconfig:"WOOFINGOVEN_PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

// Live reports whether a usable Stripe key is configured. The dev dummy key
// keeps the checkout flow exercisable without a payment backend.
func (s StripeConfig) Live() bool {
	key := strings.TrimSpace(s.SecretKey)
	return key != "" && key != DevStripeKey
}

type ShippingConfig struct {
	RatePerKmCents int    `envconfig:"WOOFINGOVEN_SHIPPING_RATE_PER_KM_CENTS" default:"85"`
	RegionPrefix   string `envconfig:"WOOFINGOVEN_SHIPPING_REGION_PREFIX" default:"D"`
	RegionCity     string `envconfig:"WOOFINGOVEN_SHIPPING_REGION_CITY" default:"dublin"`
}

type CartConfig struct {
	SessionTTL time.Duration `envconfig:"WOOFINGOVEN_CART_SESSION_TTL" default:"168h"`
}

type CheckoutConfig struct {
	IdempotencyTTL time.Duration `envconfig:"WOOFINGOVEN_CHECKOUT_IDEMPOTENCY_TTL" default:"168h"`
}

func (db *DBConfig) ensureDSN() error {
	if db.UseSQLite || db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
