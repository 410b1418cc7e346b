package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from ACCOUNTD_* environment variables.
//
// Recognized variables:
//
//	ACCOUNTD_ADDRESS          HTTP bind address
//	ACCOUNTD_DATABASE_DSN     PostgreSQL DSN
//	ACCOUNTD_SECRET_KEY       JWT HMAC secret
//	ACCOUNTD_TOKEN_TTL        access token validity, minutes
//	ACCOUNTD_PASSWORD_SCHEME  "sha256" or "argon2id"
//
// Unset variables leave the current value untouched. A non-numeric TTL is
// ignored rather than failing here; Validate catches the resulting state.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ACCOUNTD_ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("ACCOUNTD_DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("ACCOUNTD_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCOUNTD_TOKEN_TTL"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("ACCOUNTD_PASSWORD_SCHEME"); ok {
		config.PasswordScheme = v
	}
}
