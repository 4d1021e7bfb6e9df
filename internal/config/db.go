package config

// DB holds the database configuration settings.
// URL, when set, is used verbatim as the connection string and wins over the
// individual host/port fields. It is overridable with the SITES_DB_URL
// environment variable.
type DB struct {
	URL      string `env:"SITES_DB_URL" toml:"url"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	SSLMode  string `toml:"sslmode"`
}
