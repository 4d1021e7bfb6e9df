package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the sites database.
// Every user belongs to exactly one site group, which determines the sites
// they can see. Reassigning a user to another group replaces the old
// membership, it never adds a second one.
type User struct {
	// UserUUID is the unique identifier for the user.
	UserUUID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_uuid"`
	// Email is the unique email address, used as the lookup key.
	Email string `gorm:"size:255;unique;not null"`
	// SiteGroupUUID is the UUID of the group this user is assigned to.
	SiteGroupUUID uuid.UUID `gorm:"type:uuid;not null;column:site_group_uuid"`
	// SiteGroup is the associated group (loaded via foreign key).
	SiteGroup SiteGroup `gorm:"foreignKey:SiteGroupUUID;references:SiteGroupUUID"`
	// CreatedUTC is the timestamp when the user was created.
	CreatedUTC time.Time `gorm:"column:created_utc"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}
