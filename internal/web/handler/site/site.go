// Package site provides the handlers for viewing site details and
// creating new sites.
package site

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	sitecontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/site"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/toolbox"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/handler"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/handler/dashboard"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/navigation"
)

const (
	// Path is the path to the site details page.
	Path = handler.RootPath + "site"

	// NewPath is the path to the new site form.
	NewPath = handler.RootPath + "site/new"

	// TemplateName is the name of the site details template.
	TemplateName = "site/site"

	// NewTemplateName is the name of the new site form template.
	NewTemplateName = "site/new"

	// PageTitle is the title of the site details page.
	PageTitle = "Site Details"

	// NewPageTitle is the title of the new site form.
	NewPageTitle = "Add Site"
)

// Form represents the form data for creating a new site. All fields are
// free text and only checked for presence; value validation stays with the
// operator filling the form in.
type Form struct {
	ClientSiteID       string `form:"client_site_id"       validate:"required"`
	ClientSiteName     string `form:"client_site_name"     validate:"required"`
	Region             string `form:"region"               validate:"required"`
	DNOID              string `form:"dno_id"               validate:"required"`
	DNOName            string `form:"dno_name"             validate:"required"`
	DNOLongName        string `form:"dno_long_name"        validate:"required"`
	GSPID              string `form:"gsp_id"               validate:"required"`
	GSPName            string `form:"gsp_name"             validate:"required"`
	Orientation        string `form:"orientation"          validate:"required"`
	Tilt               string `form:"tilt"                 validate:"required"`
	Latitude           string `form:"latitude"             validate:"required"`
	Longitude          string `form:"longitude"            validate:"required"`
	InverterCapacityKW string `form:"inverter_capacity_kw" validate:"required"`
	ModuleCapacityKW   string `form:"module_capacity_kw"   validate:"required"`
	CapacityKW         string `form:"capacity_kw"          validate:"required"`
}

// Service is the site handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the site handler.
var Handler = Service{}

// Init initializes the site handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(NewPath, s.GetNew)
	app.Post(NewPath, s.PostNew)
	app.Get(Path, s.Get)
}

// Get handles the site details page. The site is identified either by its
// UUID or by the client-assigned site id.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext(PageTitle, "sites", "details").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(PageTitle, Path, true)

	var (
		siteUUID uuid.UUID
		err      error
	)

	switch {
	case c.Query("uuid") != "":
		siteUUID, err = uuid.Parse(c.Query("uuid"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
				"Navigation": nav,
				"Error":      "Invalid site UUID: " + c.Query("uuid"),
			}, handler.BaseLayout)
		}
	case c.Query("client_site_id") != "":
		siteUUID, err = toolbox.ResolveSiteID(s.db, c.Query("client_site_id"))
		if err != nil {
			if errors.Is(err, sitecontroller.ErrSiteNotFound) {
				return c.Status(fiber.StatusNotFound).Render(TemplateName, fiber.Map{
					"Navigation": nav,
					"Error":      "No site with client site id " + c.Query("client_site_id"),
				}, handler.BaseLayout)
			}

			log.Error().Err(err).Str("client_site_id", c.Query("client_site_id")).
				Msg("failed to resolve client site id")

			return c.Status(fiber.StatusInternalServerError).SendString("Failed to resolve site: " + err.Error())
		}
	default:
		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Provide either a site UUID or a client site id",
		}, handler.BaseLayout)
	}

	details, err := toolbox.GetSiteDetails(s.db, siteUUID)
	if err != nil {
		if errors.Is(err, sitecontroller.ErrSiteNotFound) {
			return c.Status(fiber.StatusNotFound).Render(TemplateName, fiber.Map{
				"Navigation": nav,
				"Error":      "No site with UUID " + siteUUID.String(),
			}, handler.BaseLayout)
		}

		log.Error().Err(err).Str("site_uuid", siteUUID.String()).Msg("failed to get site details")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to get site details: " + err.Error())
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Details":    details,
	}, handler.BaseLayout)
}

// GetNew handles the new site form rendering.
func (s *Service) GetNew(c *fiber.Ctx) error {
	nav := navigation.NewContext(NewPageTitle, "sites", "add").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(NewPageTitle, NewPath, true)

	return c.Render(NewTemplateName, fiber.Map{
		"Navigation": nav,
		"Form":       &Form{},
	}, handler.BaseLayout)
}

// PostNew handles the new site form submission.
func (s *Service) PostNew(c *fiber.Ctx) error {
	nav := navigation.NewContext(NewPageTitle, "sites", "add").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(NewPageTitle, NewPath, true)

	form := &Form{}
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse new site form")

		return c.Status(fiber.StatusBadRequest).Render(NewTemplateName, fiber.Map{
			"Navigation": nav,
			"Form":       form,
			"Error":      "Invalid form data",
		}, handler.BaseLayout)
	}

	if err := s.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		log.Error().Err(err).Msg("validation failed for new site")

		return c.Status(fiber.StatusBadRequest).Render(NewTemplateName, fiber.Map{
			"Navigation": nav,
			"Form":       form,
			"Error":      errorMessages,
		}, handler.BaseLayout)
	}

	dno := toolbox.DNODescriptor{
		DNOID:    form.DNOID,
		Name:     form.DNOName,
		LongName: form.DNOLongName,
	}
	gsp := toolbox.GSPDescriptor{
		GSPID: form.GSPID,
		Name:  form.GSPName,
	}

	details, message, err := toolbox.CreateNewSite(s.db, sitecontroller.CreateInput{
		ClientSiteID:       form.ClientSiteID,
		ClientSiteName:     form.ClientSiteName,
		Region:             form.Region,
		DNO:                dno.Format(),
		GSP:                gsp.Format(),
		Orientation:        form.Orientation,
		Tilt:               form.Tilt,
		Latitude:           form.Latitude,
		Longitude:          form.Longitude,
		InverterCapacityKW: form.InverterCapacityKW,
		ModuleCapacityKW:   form.ModuleCapacityKW,
		CapacityKW:         form.CapacityKW,
	})
	if err != nil {
		log.Error().Err(err).Str("client_site_id", form.ClientSiteID).Msg("failed to create site")

		return c.Status(fiber.StatusInternalServerError).Render(NewTemplateName, fiber.Map{
			"Navigation": nav,
			"Form":       form,
			"Error":      "Failed to create site: " + err.Error(),
		}, handler.BaseLayout)
	}

	log.Info().
		Str("site_uuid", details.SiteUUID).
		Str("client_site_id", details.ClientSiteID).
		Str("ml_id", details.MLID).
		Msg("Site created successfully")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Details":    details,
		"Message":    message,
	}, handler.BaseLayout)
}
