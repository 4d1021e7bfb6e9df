package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteGroupSite represents the many-to-many relationship between sites and site groups.
// Membership is a set relation: adding a site already in the group must not create
// a second row, which the composite primary key enforces at the schema level.
type SiteGroupSite struct {
	// SiteGroupUUID is the UUID of the group in this membership.
	SiteGroupUUID uuid.UUID `gorm:"type:uuid;primaryKey;column:site_group_uuid"`
	// SiteUUID is the UUID of the site in this membership.
	SiteUUID uuid.UUID `gorm:"type:uuid;primaryKey;column:site_uuid"`
	// CreatedUTC is the timestamp when the site was added to the group.
	CreatedUTC time.Time `gorm:"column:created_utc"`
}

// TableName specifies the database table name for the SiteGroupSite model.
func (SiteGroupSite) TableName() string {
	return "site_group_sites"
}
