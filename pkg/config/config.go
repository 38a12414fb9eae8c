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
	JWT          JWTConfig
	OTP          OTPConfig
	Assistant    AssistantConfig
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
	Env          string `envconfig:"FITNEXUS_APP_ENV" required:"true"`
	Port         string `envconfig:"FITNEXUS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FITNEXUS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FITNEXUS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FITNEXUS_DB_DSN"`
	Driver string `envconfig:"FITNEXUS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FITNEXUS_DB_HOST"`
	LegacyPort     int    `envconfig:"FITNEXUS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FITNEXUS_DB_USER"`
	LegacyPassword string `envconfig:"FITNEXUS_DB_PASSWORD"`
	LegacyName     string `envconfig:"FITNEXUS_DB_NAME"`
	LegacySSLMode  string `envconfig:"FITNEXUS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FITNEXUS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FITNEXUS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FITNEXUS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FITNEXUS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	// URL is validated when the redis client is actually dialed; dev
	// deployments run on the in-memory OTP store without it.
	URL          string        `envconfig:"FITNEXUS_REDIS_URL"`
	Address      string        `envconfig:"FITNEXUS_REDIS_ADDR"`
	Password     string        `envconfig:"FITNEXUS_REDIS_PASSWORD"`
	DB           int           `envconfig:"FITNEXUS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FITNEXUS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FITNEXUS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FITNEXUS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FITNEXUS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FITNEXUS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"FITNEXUS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FITNEXUS_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"FITNEXUS_JWT_EXPIRATION_MINUTES" required:"true"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type OTPConfig struct {
	CodeTTL      time.Duration `envconfig:"FITNEXUS_OTP_CODE_TTL" default:"5m"`
	LockTTL      time.Duration `envconfig:"FITNEXUS_OTP_LOCK_TTL" default:"10s"`
	SendLatency  time.Duration `envconfig:"FITNEXUS_OTP_SEND_LATENCY" default:"0s"`
	ResendWindow time.Duration `envconfig:"FITNEXUS_OTP_RESEND_WINDOW" default:"30s"`
}

type AssistantConfig struct {
	APIKey       string `envconfig:"FITNEXUS_OPENAI_API_KEY"`
	Model        string `envconfig:"FITNEXUS_OPENAI_MODEL" default:"gpt-4o-mini"`
	SystemPrompt string `envconfig:"FITNEXUS_ASSISTANT_SYSTEM_PROMPT" default:"You are NexusCoach, an elite AI fitness assistant for the FitNexus platform. Your goal is to help users with fitness advice. Keep answers concise, motivating, and action-oriented."`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"FITNEXUS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"FITNEXUS_AUTO_MIGRATE" default:"false"`
	SeedCatalog bool `envconfig:"FITNEXUS_SEED_CATALOG" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
