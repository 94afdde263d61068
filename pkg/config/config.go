package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Checkout     CheckoutConfig
	Pix          PixConfig
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
	if err := cfg.Pix.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ACAI_APP_ENV" required:"true"`
	Port         string `envconfig:"ACAI_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ACAI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ACAI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ACAI_DB_DSN"`
	Driver string `envconfig:"ACAI_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"ACAI_DB_HOST"`
	Port     int    `envconfig:"ACAI_DB_PORT" default:"5432"`
	User     string `envconfig:"ACAI_DB_USER"`
	Password string `envconfig:"ACAI_DB_PASSWORD"`
	Name     string `envconfig:"ACAI_DB_NAME"`
	SSLMode  string `envconfig:"ACAI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ACAI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ACAI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ACAI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ACAI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ACAI_REDIS_URL"`
	Address      string        `envconfig:"ACAI_REDIS_ADDR"`
	Password     string        `envconfig:"ACAI_REDIS_PASSWORD"`
	DB           int           `envconfig:"ACAI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ACAI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ACAI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ACAI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ACAI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ACAI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. Without one
// the realtime hub falls back to in-process delivery only.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CheckoutConfig struct {
	PixWindow       time.Duration `envconfig:"ACAI_CHECKOUT_PIX_WINDOW" default:"300s"`
	SessionIdleTTL  time.Duration `envconfig:"ACAI_CHECKOUT_SESSION_IDLE_TTL" default:"2h"`
	JanitorInterval time.Duration `envconfig:"ACAI_CHECKOUT_JANITOR_INTERVAL" default:"5m"`
}

type PixConfig struct {
	Key          string `envconfig:"ACAI_PIX_KEY" default:"41999320317"`
	MerchantName string `envconfig:"ACAI_PIX_MERCHANT_NAME" default:"Joao Vitor Boschetti"`
	MerchantCity string `envconfig:"ACAI_PIX_MERCHANT_CITY" default:"Curitiba"`
}

func (p PixConfig) validate() error {
	if strings.TrimSpace(p.Key) == "" {
		return fmt.Errorf("pix key is required")
	}
	if strings.TrimSpace(p.MerchantName) == "" {
		return fmt.Errorf("pix merchant name is required")
	}
	return nil
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ACAI_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ACAI_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
