// Package config loads runtime configuration for the registration CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the account server
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations can be strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "request_timeout": "5s"
//	}
package config
