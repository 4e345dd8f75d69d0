package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "WOOFINGOVEN"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// DevStripeKey is the placeholder key used when exercising checkout without a
// payment backend.
const DevStripeKey = "sk_test_dummy_key_for_development"

const (
	EnvAppEnv   = "WOOFINGOVEN_APP_ENV"
	EnvPort     = "WOOFINGOVEN_APP_PORT"
	EnvDBDSN    = "WOOFINGOVEN_DB_DSN"
	EnvDBHost   = "WOOFINGOVEN_DB_HOST"
	EnvDBUser   = "WOOFINGOVEN_DB_USER"
	EnvDBName   = "WOOFINGOVEN_DB_NAME"
	EnvRedisURL = "WOOFINGOVEN_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
