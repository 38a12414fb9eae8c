package config

const EnvPrefix = "FITNEXUS"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy manifests.
const (
	EnvAppEnv     = "FITNEXUS_APP_ENV"
	EnvPort       = "FITNEXUS_APP_PORT"
	EnvDBDSN      = "FITNEXUS_DB_DSN"
	EnvDBHost     = "FITNEXUS_DB_HOST"
	EnvDBUser     = "FITNEXUS_DB_USER"
	EnvDBName     = "FITNEXUS_DB_NAME"
	EnvRedisURL   = "FITNEXUS_REDIS_URL"
	EnvJWTSecret  = "FITNEXUS_JWT_SECRET"
	EnvJWTIssuer  = "FITNEXUS_JWT_ISSUER"
	EnvJWTExpMins = "FITNEXUS_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
