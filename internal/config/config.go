// Package config loads application configuration from environment
// variables, with a .env file honoured when present. Everything has a
// sane default so a fresh checkout runs with no setup: the stores land
// under ./localdb and the booking trail under ./logs.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Strings for paths and
// the environment name, ints for tunables.
type Config struct {
	Env          string // application environment ("dev", "prod")
	UsersFile    string // path of the user store file
	TrainsFile   string // path of the train store file
	AuditDir     string // directory receiving booking.log
	BcryptCost   int    // bcrypt cost for password hashing
	MaxMenuLoops int    // safety cap on menu iterations
}

// Load reads configuration from the environment. A missing .env file
// is fine; explicit environment variables win over it either way.
func Load() Config {
	_ = godotenv.Load()
	dataDir := envStr("DATA_DIR", "localdb")
	return Config{
		Env:          envStr("APP_ENV", "dev"),
		UsersFile:    envStr("USERS_FILE", filepath.Join(dataDir, "users.json")),
		TrainsFile:   envStr("TRAINS_FILE", filepath.Join(dataDir, "trains.json")),
		AuditDir:     envStr("AUDIT_DIR", "logs"),
		BcryptCost:   envInt("BCRYPT_COST", 10),
		MaxMenuLoops: envInt("MAX_MENU_LOOPS", 1000),
	}
}

func envStr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
