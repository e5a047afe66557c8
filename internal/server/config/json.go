package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/contactkeeper/internal/flagx"
	"github.com/dmitrijs2005/contactkeeper/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept strings such
// as "100h" or integer nanoseconds. Fields left out of the file keep the
// value already present in Config.
type JsonConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	DatabaseDSN           *string         `json:"database_dsn"`
	StorageType           *string         `json:"storage_type"`
	SecretKey             *string         `json:"jwt_secret"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	BcryptCost            *int            `json:"bcrypt_cost"`
	ShutdownTimeout       *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays config with the JSON file given by -c or -config.
// Without either flag nothing is loaded. An unreadable file or invalid JSON
// panics, as configuration errors are fatal at startup.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.StorageType != nil {
		config.StorageType = *c.StorageType
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
