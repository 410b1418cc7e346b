package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/esavelyev/accountd/internal/flagx"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// Durations are expressed in minutes to match the flag and env forms; after
// unmarshalling, values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr         string `json:"endpoint_addr"`
	DatabaseDSN          string `json:"database_dsn"`
	SecretKey            string `json:"secret_key"`
	TokenValidityMinutes int    `json:"token_validity_minutes"`
	PasswordScheme       string `json:"password_scheme"`
}

// parseJson overlays configuration values from the JSON file named by the
// -c or -config flags. When neither flag is given, nothing is loaded.
// An unreadable file or invalid JSON panics: a config file that was asked
// for but cannot be used is a startup defect.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMinutes != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}
	if c.PasswordScheme != "" {
		config.PasswordScheme = c.PasswordScheme
	}
}
