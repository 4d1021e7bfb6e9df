// Package site provides lookup and creation operations for sites.
package site

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/models"
)

const (
	clientSiteIDQueryPattern = "client_site_id = ?"
)

var (
	// ErrSiteNotFound is returned when a site is not found.
	ErrSiteNotFound = errors.New("site not found")
	// ErrSiteUUIDEmpty is returned when a lookup is attempted with the zero UUID.
	ErrSiteUUIDEmpty = errors.New("site uuid cannot be empty")
	// ErrClientSiteIDEmpty is returned when a lookup is attempted with an empty client site id.
	ErrClientSiteIDEmpty = errors.New("client site id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// CreateInput carries the form-style fields for a new site.
// All values arrive as free text; numeric fields are converted here and any
// conversion or constraint failure is reported back unchanged.
type CreateInput struct {
	ClientSiteID       string
	ClientSiteName     string
	Region             string
	DNO                string
	GSP                string
	Orientation        string
	Tilt               string
	Latitude           string
	Longitude          string
	InverterCapacityKW string
	ModuleCapacityKW   string
	CapacityKW         string
}

// Get retrieves a site by its UUID, with its group memberships loaded.
func Get(db *gorm.DB, siteUUID uuid.UUID) (*models.Site, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if siteUUID == uuid.Nil {
		return nil, ErrSiteUUIDEmpty
	}

	var site models.Site
	result := db.Preload("SiteGroups").First(&site, "site_uuid = ?", siteUUID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, result.Error
	}

	return &site, nil
}

// GetByClientSiteID retrieves a site by its client-assigned identifier.
func GetByClientSiteID(db *gorm.DB, clientSiteID string) (*models.Site, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if clientSiteID == "" {
		return nil, ErrClientSiteIDEmpty
	}

	var site models.Site
	result := db.Preload("SiteGroups").Where(clientSiteIDQueryPattern, clientSiteID).First(&site)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, result.Error
	}

	return &site, nil
}

// GetAll retrieves all sites from the database.
func GetAll(db *gorm.DB) ([]models.Site, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sites []models.Site
	result := db.Order("created_utc").Find(&sites)
	if result.Error != nil {
		return nil, result.Error
	}

	return sites, nil
}

// Create inserts a new site with a fresh UUID and an ml_id derived as the
// current maximum plus one. Numeric free-text fields are converted here; the
// caller is expected to have checked presence only.
func Create(db *gorm.DB, input CreateInput) (*models.Site, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if input.ClientSiteID == "" {
		return nil, ErrClientSiteIDEmpty
	}

	site := models.Site{
		SiteUUID:       uuid.New(),
		ClientSiteID:   input.ClientSiteID,
		ClientSiteName: input.ClientSiteName,
		Region:         input.Region,
		DNO:            input.DNO,
		GSP:            input.GSP,
		CreatedUTC:     time.Now().UTC(),
	}

	var err error

	if site.Orientation, err = parseField("orientation", input.Orientation); err != nil {
		return nil, err
	}

	if site.Tilt, err = parseField("tilt", input.Tilt); err != nil {
		return nil, err
	}

	if site.Latitude, err = parseField("latitude", input.Latitude); err != nil {
		return nil, err
	}

	if site.Longitude, err = parseField("longitude", input.Longitude); err != nil {
		return nil, err
	}

	if site.InverterCapacityKW, err = parseField("inverter_capacity_kw", input.InverterCapacityKW); err != nil {
		return nil, err
	}

	if site.ModuleCapacityKW, err = parseField("module_capacity_kw", input.ModuleCapacityKW); err != nil {
		return nil, err
	}

	if site.CapacityKW, err = parseField("capacity_kw", input.CapacityKW); err != nil {
		return nil, err
	}

	// ml_id is max of the existing ids plus one, starting at 1 on an empty table
	var maxMLID int
	result := db.Model(&models.Site{}).Select("COALESCE(MAX(ml_id), 0)").Scan(&maxMLID)
	if result.Error != nil {
		return nil, result.Error
	}

	site.MLID = maxMLID + 1

	result = db.Create(&site)
	if result.Error != nil {
		return nil, result.Error
	}

	return &site, nil
}

// parseField converts a free-text numeric form field.
func parseField(name, value string) (float64, error) {
	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "invalid value for %s", name)
	}

	return out, nil
}
