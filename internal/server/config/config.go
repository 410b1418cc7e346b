// Package config handles configuration for the accountd server, layering
// defaults, environment variables, an optional JSON file, and command-line
// flags.
package config

import (
	"errors"
	"time"
)

// Password hashing schemes accepted by Config.PasswordScheme.
const (
	SchemeSHA256   = "sha256"
	SchemeArgon2id = "argon2id"
)

// Config holds runtime settings for the accountd server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required; startup fails when empty.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required; there is
//     deliberately no development default.
//   - TokenValidityDuration: access token lifetime.
//   - PasswordScheme: digest scheme for stored passwords. "sha256" matches
//     the legacy stored-digest format; "argon2id" is the salted scheme for
//     new deployments.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	PasswordScheme        string
}

// LoadDefaults populates Config with defaults. Only values that are safe to
// default are set: the database DSN and the secret key must always come
// from the environment, a config file, or flags.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.TokenValidityDuration = 60 * time.Minute
	c.PasswordScheme = SchemeSHA256
}

// Validate reports the first fatal misconfiguration. A missing DSN or
// secret key aborts startup; neither is ever silently defaulted.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if c.SecretKey == "" {
		return errors.New("secret key is not set")
	}
	if c.TokenValidityDuration <= 0 {
		return errors.New("token validity duration must be positive")
	}
	if c.PasswordScheme != SchemeSHA256 && c.PasswordScheme != SchemeArgon2id {
		return errors.New("unknown password scheme: " + c.PasswordScheme)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and command-line flags, in
// that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
