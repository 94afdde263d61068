package config

// EnvPrefix is passed to envconfig; the per-field tags already carry the
// full ACAI_ names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "ACAI_APP_ENV"
	EnvPort     = "ACAI_APP_PORT"
	EnvDBDSN    = "ACAI_DB_DSN"
	EnvDBHost   = "ACAI_DB_HOST"
	EnvDBUser   = "ACAI_DB_USER"
	EnvDBName   = "ACAI_DB_NAME"
	EnvRedisURL = "ACAI_REDIS_URL"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
