// Package user provides lookup and group assignment operations for users.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/models"
)

const (
	emailQueryPattern = "email = ?"
	nameQueryPattern  = "site_group_name = ?"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailEmpty is returned when a lookup is attempted with an empty email.
	ErrEmailEmpty = errors.New("email cannot be empty")
	// ErrSiteGroupNotFound is returned when the target site group is not found.
	ErrSiteGroupNotFound = errors.New("site group not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByEmail retrieves a user by email, with the group and its sites loaded.
func GetByEmail(db *gorm.DB, email string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if email == "" {
		return nil, ErrEmailEmpty
	}

	var u models.User
	result := db.Preload("SiteGroup").Preload("SiteGroup.Sites").Where(emailQueryPattern, email).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// GetAll retrieves all users from the database.
func GetAll(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	result := db.Order("email").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Create creates a new user assigned to the given site group.
func Create(db *gorm.DB, email string, siteGroupUUID uuid.UUID) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if email == "" {
		return nil, ErrEmailEmpty
	}

	u := &models.User{
		UserUUID:      uuid.New(),
		Email:         email,
		SiteGroupUUID: siteGroupUUID,
		CreatedUTC:    time.Now().UTC(),
	}

	result := db.Create(u)
	if result.Error != nil {
		return nil, result.Error
	}

	return u, nil
}

// UpdateSiteGroup moves the user to the named group. The previous assignment
// is replaced, a user belongs to exactly one group at a time.
func UpdateSiteGroup(db *gorm.DB, email, siteGroupName string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if email == "" {
		return nil, ErrEmailEmpty
	}

	var siteGroup models.SiteGroup
	result := db.Where(nameQueryPattern, siteGroupName).First(&siteGroup)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSiteGroupNotFound
		}
		return nil, result.Error
	}

	var u models.User
	result = db.Where(emailQueryPattern, email).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	result = db.Model(&u).Update("site_group_uuid", siteGroup.SiteGroupUUID)
	if result.Error != nil {
		return nil, result.Error
	}

	u.SiteGroupUUID = siteGroup.SiteGroupUUID
	u.SiteGroup = siteGroup

	return &u, nil
}
