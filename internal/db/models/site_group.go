package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteGroup represents a named collection of sites and the users that may see them.
// The group name is the unique key used for all lookups.
type SiteGroup struct {
	// SiteGroupUUID is the unique identifier for the group.
	SiteGroupUUID uuid.UUID `gorm:"type:uuid;primaryKey;column:site_group_uuid"`
	// SiteGroupName is the unique name of the group (e.g. "ocf").
	SiteGroupName string `gorm:"size:255;unique;not null;column:site_group_name"`
	// Sites are the member sites of this group.
	Sites []Site `gorm:"many2many:site_group_sites;foreignKey:SiteGroupUUID;joinForeignKey:SiteGroupUUID;references:SiteUUID;joinReferences:SiteUUID"`
	// Users are the users assigned to this group.
	Users []User `gorm:"foreignKey:SiteGroupUUID;references:SiteGroupUUID"`
	// CreatedUTC is the timestamp when the group was created.
	CreatedUTC time.Time `gorm:"column:created_utc"`
}

// TableName specifies the database table name for the SiteGroup model.
func (SiteGroup) TableName() string {
	return "site_groups"
}
