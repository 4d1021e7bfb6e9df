package sitegroup

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
	sitecontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/site"
	sitegroupcontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/sitegroup"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/models"
)

// noOpViews is a minimal Fiber Views engine used for tests.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, _ interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)
	return nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{Views: noOpViews{}})
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.SetupJoinTable(&models.SiteGroup{}, "Sites", &models.SiteGroupSite{})
	require.NoError(t, err, "failed to set up join table")

	err = db.AutoMigrate(&models.Site{}, &models.SiteGroup{}, &models.User{}, &models.SiteGroupSite{})
	require.NoError(t, err, "failed to migrate models")

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 8080,
		},
	}
}

func seedSite(t *testing.T, db *gorm.DB, clientSiteID string) *models.Site {
	t.Helper()

	s, err := sitecontroller.Create(db, sitecontroller.CreateInput{
		ClientSiteID:       clientSiteID,
		ClientSiteName:     "Site " + clientSiteID,
		Region:             "uk",
		DNO:                `{"dno_id": "10", "name": "_A", "long_name": "UKPN (East)"}`,
		GSP:                `{"gsp_id": "280", "name": "Sundon"}`,
		Orientation:        "180",
		Tilt:               "35",
		Latitude:           "51.76",
		Longitude:          "-1.25",
		InverterCapacityKW: "4.5",
		ModuleCapacityKW:   "5",
		CapacityKW:         "4",
	})
	require.NoError(t, err)

	return s
}

func TestGet(t *testing.T) {
	app := newTestApp()
	db := newTestDB(t)

	_, err := sitegroupcontroller.Create(db, "ocf")
	require.NoError(t, err)

	svc := Service{}
	svc.Init(app, newTestConfig(), db)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{
			name:       "listing only",
			target:     "/sitegroup",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown group",
			target:     "/sitegroup?name=nonexistent",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "known group",
			target:     "/sitegroup?name=ocf",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tt.target, nil)
			require.NoError(t, err)

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer resp.Body.Close() //nolint:errcheck // ok in tests

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestPostAttach(t *testing.T) {
	app := newTestApp()
	db := newTestDB(t)

	_, err := sitegroupcontroller.Create(db, "ocf")
	require.NoError(t, err)
	s := seedSite(t, db, "client-1")

	svc := Service{}
	svc.Init(app, newTestConfig(), db)

	postForm := func(t *testing.T, target string, form url.Values) *http.Response {
		t.Helper()

		req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
		require.NoError(t, err)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

		resp, err := app.Test(req)
		require.NoError(t, err)

		return resp
	}

	t.Run("invalid uuid", func(t *testing.T) {
		resp := postForm(t, AttachPath, url.Values{
			"site_uuid":       {"not-a-uuid"},
			"site_group_name": {"ocf"},
		})
		defer resp.Body.Close() //nolint:errcheck // ok in tests

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("attach is idempotent", func(t *testing.T) {
		form := url.Values{
			"site_uuid":       {s.SiteUUID.String()},
			"site_group_name": {"ocf"},
		}

		for range 2 {
			resp := postForm(t, AttachPath, form)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close() //nolint:errcheck // ok in tests
		}

		var count int64
		err := db.Model(&models.SiteGroupSite{}).
			Where("site_uuid = ?", s.SiteUUID).Count(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("attach all twice adds nothing the second time", func(t *testing.T) {
		seedSite(t, db, "client-2")

		for range 2 {
			resp := postForm(t, AttachAllPath, url.Values{"site_group_name": {"ocf"}})
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close() //nolint:errcheck // ok in tests
		}

		group, err := sitegroupcontroller.GetByName(db, "ocf")
		require.NoError(t, err)
		assert.Len(t, group.Sites, 2)
	})
}
