// Package sitegroup provides the handlers for viewing site groups and
// attaching sites to them.
package sitegroup

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	sitegroupcontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/sitegroup"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/toolbox"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/handler"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/handler/dashboard"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/navigation"
)

const (
	// Path is the path to the site group details page.
	Path = handler.RootPath + "sitegroup"

	// AttachPath is the path for attaching one site to a group.
	AttachPath = handler.RootPath + "sitegroup/attach"

	// AttachAllPath is the path for attaching every site to a group.
	AttachAllPath = handler.RootPath + "sitegroup/attach-all"

	// TemplateName is the name of the site group details template.
	TemplateName = "sitegroup/sitegroup"

	// AttachTemplateName is the name of the attach confirmation template.
	AttachTemplateName = "sitegroup/attach"

	// PageTitle is the title of the site group details page.
	PageTitle = "Site Group Details"
)

// AttachForm represents the form data for attaching a site to a group.
type AttachForm struct {
	SiteUUID      string `form:"site_uuid"       validate:"required,uuid"`
	SiteGroupName string `form:"site_group_name" validate:"required"`
}

// AttachAllForm represents the form data for the bulk attach. The group name
// may be left empty to target the default group.
type AttachAllForm struct {
	SiteGroupName string `form:"site_group_name"`
}

// Service is the site group handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the site group handler.
var Handler = Service{}

// Init initializes the site group handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.Get)
	app.Post(AttachPath, s.PostAttach)
	app.Post(AttachAllPath, s.PostAttachAll)
}

// Get handles the site group details page. Without a name query parameter it
// lists the available groups only.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext(PageTitle, "sitegroups", "details").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(PageTitle, Path, true)

	groups, err := sitegroupcontroller.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list site groups")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to list site groups: " + err.Error())
	}

	groupNames := make([]string, 0, len(groups))
	for _, g := range groups {
		groupNames = append(groupNames, g.SiteGroupName)
	}

	name := c.Query("name")

	data := fiber.Map{
		"Navigation": nav,
		"Groups":     groupNames,
		"Name":       name,
	}

	if name == "" {
		return c.Render(TemplateName, data, handler.BaseLayout)
	}

	details, err := toolbox.GetSiteGroupDetails(s.db, name)
	if err != nil {
		if errors.Is(err, sitegroupcontroller.ErrSiteGroupNotFound) {
			data["Error"] = "No site group with name " + name

			return c.Status(fiber.StatusNotFound).Render(TemplateName, data, handler.BaseLayout)
		}

		log.Error().Err(err).Str("site_group", name).Msg("failed to get site group details")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to get site group details: " + err.Error())
	}

	data["Details"] = details

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// PostAttach handles attaching a single site to a group. Attaching a site
// that is already a member changes nothing.
func (s *Service) PostAttach(c *fiber.Ctx) error {
	nav := navigation.NewContext(PageTitle, "sitegroups", "attach").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(PageTitle, Path, true)

	form := &AttachForm{}
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse attach form")

		return c.Status(fiber.StatusBadRequest).Render(AttachTemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Invalid form data",
		}, handler.BaseLayout)
	}

	if err := s.validator.Struct(form); err != nil {
		log.Error().Err(err).Msg("validation failed for attach")

		return c.Status(fiber.StatusBadRequest).Render(AttachTemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Both a site UUID and a site group name are required",
		}, handler.BaseLayout)
	}

	siteUUID, err := uuid.Parse(form.SiteUUID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Render(AttachTemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Invalid site UUID: " + form.SiteUUID,
		}, handler.BaseLayout)
	}

	result, err := toolbox.AttachSiteToGroup(s.db, siteUUID, form.SiteGroupName)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, sitegroupcontroller.ErrSiteNotFound) ||
			errors.Is(err, sitegroupcontroller.ErrSiteGroupNotFound) {
			status = fiber.StatusNotFound
		}

		log.Error().Err(err).
			Str("site_uuid", form.SiteUUID).
			Str("site_group", form.SiteGroupName).
			Msg("failed to attach site to group")

		return c.Status(status).Render(AttachTemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to attach site: " + err.Error(),
		}, handler.BaseLayout)
	}

	log.Info().
		Str("site_uuid", form.SiteUUID).
		Str("site_group", form.SiteGroupName).
		Msg("Site attached to group")

	return c.Render(AttachTemplateName, fiber.Map{
		"Navigation": nav,
		"Result":     result,
	}, handler.BaseLayout)
}

// PostAttachAll handles attaching every site to one group.
func (s *Service) PostAttachAll(c *fiber.Ctx) error {
	nav := navigation.NewContext(PageTitle, "sitegroups", "attach").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(PageTitle, Path, true)

	form := &AttachAllForm{}
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse attach-all form")

		return c.Status(fiber.StatusBadRequest).Render(AttachTemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Invalid form data",
		}, handler.BaseLayout)
	}

	result, err := toolbox.AddAllSitesToGroup(s.db, form.SiteGroupName)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, sitegroupcontroller.ErrSiteGroupNotFound) {
			status = fiber.StatusNotFound
		}

		log.Error().Err(err).
			Str("site_group", form.SiteGroupName).
			Msg("failed to attach all sites to group")

		return c.Status(status).Render(AttachTemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to attach sites: " + err.Error(),
		}, handler.BaseLayout)
	}

	log.Info().
		Str("site_group", form.SiteGroupName).
		Int("sites_added", len(result.SitesAdded)).
		Msg("Bulk attach completed")

	return c.Render(AttachTemplateName, fiber.Map{
		"Navigation": nav,
		"Bulk":       result,
	}, handler.BaseLayout)
}
