// Package sitegroup provides lookup and membership operations for site groups.
package sitegroup

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/models"
)

const (
	nameQueryPattern = "site_group_name = ?"
)

var (
	// ErrSiteGroupNotFound is returned when a site group is not found.
	ErrSiteGroupNotFound = errors.New("site group not found")
	// ErrSiteNotFound is returned when the site to add to a group is not found.
	ErrSiteNotFound = errors.New("site not found")
	// ErrSiteGroupNameEmpty is returned when a lookup is attempted with an empty group name.
	ErrSiteGroupNameEmpty = errors.New("site group name cannot be empty")
	// ErrSiteGroupAlreadyExists is returned when creating a group whose name is taken.
	ErrSiteGroupAlreadyExists = errors.New("site group already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByName retrieves a site group by its name, with member sites and users loaded.
func GetByName(db *gorm.DB, siteGroupName string) (*models.SiteGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if siteGroupName == "" {
		return nil, ErrSiteGroupNameEmpty
	}

	var siteGroup models.SiteGroup
	result := db.Preload("Sites").Preload("Users").Where(nameQueryPattern, siteGroupName).First(&siteGroup)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSiteGroupNotFound
		}
		return nil, result.Error
	}

	return &siteGroup, nil
}

// GetAll retrieves all site groups from the database.
func GetAll(db *gorm.DB) ([]models.SiteGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var siteGroups []models.SiteGroup
	result := db.Order("site_group_name").Find(&siteGroups)
	if result.Error != nil {
		return nil, result.Error
	}

	return siteGroups, nil
}

// Create creates a new site group with the given name.
func Create(db *gorm.DB, siteGroupName string) (*models.SiteGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if siteGroupName == "" {
		return nil, ErrSiteGroupNameEmpty
	}

	// Check if the group already exists
	var existing models.SiteGroup
	result := db.Where(nameQueryPattern, siteGroupName).First(&existing)
	if result.Error == nil {
		return nil, ErrSiteGroupAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	siteGroup := &models.SiteGroup{
		SiteGroupUUID: uuid.New(),
		SiteGroupName: siteGroupName,
		CreatedUTC:    time.Now().UTC(),
	}

	result = db.Create(siteGroup)
	if result.Error != nil {
		return nil, result.Error
	}

	return siteGroup, nil
}

// AddSite idempotently ensures the site is a member of the named group and
// returns the group's site list afterwards. Adding a site that is already a
// member is a no-op; memberships in other groups are never touched.
func AddSite(db *gorm.DB, siteUUID uuid.UUID, siteGroupName string) ([]models.Site, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	siteGroup, err := GetByName(db, siteGroupName)
	if err != nil {
		return nil, err
	}

	var site models.Site
	result := db.First(&site, "site_uuid = ?", siteUUID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, result.Error
	}

	// membership is a set relation: only insert when no row exists yet
	var membership models.SiteGroupSite
	result = db.Where("site_group_uuid = ? AND site_uuid = ?", siteGroup.SiteGroupUUID, siteUUID).
		First(&membership)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		membership = models.SiteGroupSite{
			SiteGroupUUID: siteGroup.SiteGroupUUID,
			SiteUUID:      siteUUID,
			CreatedUTC:    time.Now().UTC(),
		}
		if result = db.Create(&membership); result.Error != nil {
			return nil, result.Error
		}
	} else if result.Error != nil {
		return nil, result.Error
	}

	updated, err := GetByName(db, siteGroupName)
	if err != nil {
		return nil, err
	}

	return updated.Sites, nil
}
