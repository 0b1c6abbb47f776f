package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Strings for identifiers and secrets, ints
// for the token lifetime and the bcrypt cost.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and
// returns a Config. Database variables are required and enforced by
// must(); the rest fall back to the defaults the original deployment
// shipped with (port 3001, one-hour tokens, bcrypt cost 10).
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),             // environment (dev/test/prod)
		Port:         getenv("APP_PORT", "3001"),           // port to bind the HTTP server
		DBUser:       must("DB_USER"),                      // database user
		DBPass:       os.Getenv("DB_PASS"),                 // database password (empty allowed)
		DBHost:       must("DB_HOST"),                      // database host
		DBPort:       must("DB_PORT"),                      // database port
		DBName:       must("DB_NAME"),                      // database name
		JWTSecret:    getenv("JWT_SECRET", "vividh_secret"), // signing secret; override in production
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 60),   // tokens live one hour by default
		BcryptCost:   envInt("BCRYPT_COST", 10),            // bcrypt cost factor
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of key or def when unset/empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt reads an integer environment variable, falling back to def when the
// variable is unset or not a valid integer.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
