// Package user provides the handlers for viewing a user's details and
// reassigning their site group.
package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	usercontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/user"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/toolbox"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/handler"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/handler/dashboard"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/web/navigation"
)

const (
	// Path is the path to the user details page.
	Path = handler.RootPath + "user"

	// SiteGroupPath is the path for changing the user's site group.
	SiteGroupPath = handler.RootPath + "user/sitegroup"

	// TemplateName is the name of the user details template.
	TemplateName = "user/user"

	// PageTitle is the title of the user details page.
	PageTitle = "User Details"
)

// SiteGroupForm represents the form data for moving a user to another group.
type SiteGroupForm struct {
	Email         string `form:"email"           validate:"required,email"`
	SiteGroupName string `form:"site_group_name" validate:"required"`
}

// Service is the user handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the user handler.
var Handler = Service{}

// Init initializes the user handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.Get)
	app.Post(SiteGroupPath, s.PostSiteGroup)
}

// Get handles the user details page. The user is identified by email.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext(PageTitle, "users", "details").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(PageTitle, Path, true)

	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Provide a user email",
		}, handler.BaseLayout)
	}

	details, err := toolbox.GetUserDetails(s.db, email)
	if err != nil {
		if errors.Is(err, usercontroller.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).Render(TemplateName, fiber.Map{
				"Navigation": nav,
				"Error":      "No user with email " + email,
			}, handler.BaseLayout)
		}

		log.Error().Err(err).Str("email", email).Msg("failed to get user details")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to get user details: " + err.Error())
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Email":      email,
		"Details":    details,
	}, handler.BaseLayout)
}

// PostSiteGroup handles moving a user to another site group. The previous
// assignment is replaced, a user belongs to exactly one group.
func (s *Service) PostSiteGroup(c *fiber.Ctx) error {
	nav := navigation.NewContext(PageTitle, "users", "sitegroup").
		AddBreadcrumb("Home", dashboard.Path, false).
		AddBreadcrumb(PageTitle, Path, true)

	form := &SiteGroupForm{}
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse user site group form")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Invalid form data",
		}, handler.BaseLayout)
	}

	if err := s.validator.Struct(form); err != nil {
		log.Error().Err(err).Msg("validation failed for user site group change")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Both a valid email and a site group name are required",
		}, handler.BaseLayout)
	}

	assignment, err := toolbox.ChangeUserSiteGroup(s.db, form.Email, form.SiteGroupName)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, usercontroller.ErrUserNotFound) ||
			errors.Is(err, usercontroller.ErrSiteGroupNotFound) {
			status = fiber.StatusNotFound
		}

		log.Error().Err(err).
			Str("email", form.Email).
			Str("site_group", form.SiteGroupName).
			Msg("failed to change user site group")

		return c.Status(status).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to change site group: " + err.Error(),
		}, handler.BaseLayout)
	}

	log.Info().
		Str("email", assignment.Email).
		Str("site_group", assignment.SiteGroupName).
		Msg("User site group changed")

	details, err := toolbox.GetUserDetails(s.db, assignment.Email)
	if err != nil {
		log.Error().Err(err).Str("email", assignment.Email).Msg("failed to get user details")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to get user details: " + err.Error())
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Email":      assignment.Email,
		"Details":    details,
		"Message":    "User " + assignment.Email + " was moved to group " + assignment.SiteGroupName + ".",
	}, handler.BaseLayout)
}
