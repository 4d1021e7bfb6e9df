package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/dsn"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/models"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService web.Service
	listenAddr string
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(d.listenAddr)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormpostgres.Open(dsn.Create(cfg)) // open db with gorm postgres driver

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	if err = db.SetupJoinTable(&models.SiteGroup{}, "Sites", &models.SiteGroupSite{}); err != nil {
		log.Fatal().Err(err).Msg("failed to set up join table")
		return nil
	}

	if err = db.AutoMigrate(
		&models.Site{},
		&models.SiteGroup{},
		&models.User{},
		&models.SiteGroupSite{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	return &Daemon{
		webService: *web.New(cfg, db),
		listenAddr: fmt.Sprintf(":%d", cfg.Webserver.Port),
	}
}
