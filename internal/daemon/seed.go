package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/sitegroup"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/toolbox"
)

func seed(cfg *config.Config, db *gorm.DB) {
	// Make sure the default site group exists so bulk operations
	// have a target on a fresh database

	name := cfg.Toolbox.DefaultSiteGroup
	if name == "" {
		name = toolbox.DefaultSiteGroup
	}

	if _, err := sitegroup.Create(db, name); err != nil {
		if errors.Is(err, sitegroup.ErrSiteGroupAlreadyExists) {
			return
		}

		log.Error().Err(err).Str("site_group", name).Msg("failed to seed default site group")
	}
}
