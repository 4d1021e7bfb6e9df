// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
)

// Create builds the Data Source Name from the configuration.
// A full connection URL (db.url or the SITES_DB_URL environment variable)
// wins over the individual host/port fields.
func Create(dbCfg *config.Config) string {
	if dbCfg.DB.URL != "" {
		return dbCfg.DB.URL
	}

	sslMode := dbCfg.DB.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		sslMode,
	)

	return out
}
