// Package dashboard provides the landing page listing the known users,
// site groups and sites.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	sitecontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/site"
	sitegroupcontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/sitegroup"
	usercontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/user"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/toolbox"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/handler"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// PageTitle is the title of the dashboard page.
	PageTitle = "Dashboard"
)

// Data represents the complete dashboard data.
type Data struct {
	Users      []string
	SiteGroups []string
	Sites      []toolbox.SiteSummary
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext(PageTitle, "dashboard", "dashboard").
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb(PageTitle, Path, true)

	users, err := usercontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to list users: " + err.Error())
	}

	groups, err := sitegroupcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list site groups")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to list site groups: " + err.Error())
	}

	sites, err := sitecontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list sites")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to list sites: " + err.Error())
	}

	data := Data{
		Users:      make([]string, 0, len(users)),
		SiteGroups: make([]string, 0, len(groups)),
		Sites:      make([]toolbox.SiteSummary, 0, len(sites)),
	}

	for _, u := range users {
		data.Users = append(data.Users, u.Email)
	}

	for _, g := range groups {
		data.SiteGroups = append(data.SiteGroups, g.SiteGroupName)
	}

	for _, site := range sites {
		data.Sites = append(data.Sites, toolbox.SiteSummary{
			SiteUUID:     site.SiteUUID.String(),
			ClientSiteID: site.ClientSiteID,
		})
	}

	log.Debug().
		Int("users", len(data.Users)).
		Int("site_groups", len(data.SiteGroups)).
		Int("sites", len(data.Sites)).
		Msg("Dashboard listings retrieved successfully")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data":       data,
	}, handler.BaseLayout)
}
