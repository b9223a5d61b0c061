// Package config loads service configuration from the environment.
//
// An optional dotenv file (ENV_FILE, default ".env") is read first; values
// already exported in the environment win. Every field has a default, so the
// service starts with no configuration at all and talks to a local MySQL
// database named eve_pf.
package config
