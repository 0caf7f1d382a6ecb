// Package config loads application configuration from environment variables.
package config

// Config holds the runtime configuration for the catalog server. The
// service is deliberately small: everything beyond the listen port and
// the location of the product database belongs to the deployment, not
// to this process.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBPath string // path to the read-only SQLite product database
}

// Load reads configuration from the environment, falling back to
// defaults suitable for local development. The database file itself is
// validated at open time, not here.
func Load() Config {
	return Config{
		Env:    getenv("APP_ENV", "dev"),
		Port:   getenv("APP_PORT", "8000"),
		DBPath: getenv("DB_PATH", "shl_products.db"),
	}
}
