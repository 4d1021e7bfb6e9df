package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrNoDatabaseTarget error if neither db.url/SITES_DB_URL nor db.host is set.
	ErrNoDatabaseTarget = errors.New("no database configured: set db.url, db.host or SITES_DB_URL")
)
