// Package config handles configuration for the samba command-line tools:
// defaults, an optional .env overlay, and command-line flags, applied in
// that order.
//
// The database administrator password is deliberately absent here. It is
// prompted per invocation and threaded explicitly through DSN, so no
// process-wide credential state exists.
package config

import "fmt"

// Config holds the database connection settings shared by all commands.
type Config struct {
	DatabaseHost string
	DatabasePort int
	DatabaseUser string
	DatabaseName string
	SSLMode      string
}

// LoadDefaults populates Config with local-development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseHost = "localhost"
	c.DatabasePort = 5432
	c.DatabaseUser = "postgres"
	c.DatabaseName = "samba"
	c.SSLMode = "disable"
}

// DSN assembles a pgx connection string for the configured database.
func (c *Config) DSN(password string) string {
	return c.dsn(c.DatabaseName, password)
}

// AdminDSN assembles a connection string for the maintenance database,
// used when the configured database does not exist yet.
func (c *Config) AdminDSN(password string) string {
	return c.dsn("postgres", password)
}

func (c *Config) dsn(dbname, password string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost, c.DatabasePort, c.DatabaseUser, password, dbname, c.SSLMode)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
