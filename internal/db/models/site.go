package models

import (
	"time"

	"github.com/google/uuid"
)

// Site represents a PV installation registered in the sites database.
// Sites are created once through the toolbox and never deleted by it.
// A site can belong to any number of site groups (many-to-many).
type Site struct {
	// SiteUUID is the immutable unique identifier for the site, generated at creation.
	SiteUUID uuid.UUID `gorm:"type:uuid;primaryKey;column:site_uuid"`
	// MLID is the derived numeric identifier, assigned as max(ml_id)+1 at creation.
	MLID int `gorm:"column:ml_id;not null"`
	// ClientSiteID is the client-assigned identifier, used only for lookup convenience.
	// It must resolve to exactly one site.
	ClientSiteID string `gorm:"size:255;unique;not null"`
	// ClientSiteName is the display name the client uses for the site.
	ClientSiteName string `gorm:"size:255"`
	// Region is the geographic region the site is located in.
	Region string `gorm:"size:255"`
	// DNO is the distribution network operator descriptor as a JSON string,
	// e.g. {"dno_id": "10", "name": "_A", "long_name": "UKPN (East)"}.
	DNO string `gorm:"size:255"`
	// GSP is the grid supply point descriptor as a JSON string,
	// e.g. {"gsp_id": "280", "name": "Sundon"}.
	GSP string `gorm:"size:255"`
	// Orientation is the panel orientation in degrees.
	Orientation float64
	// Tilt is the panel tilt in degrees.
	Tilt float64
	// Latitude of the site.
	Latitude float64
	// Longitude of the site.
	Longitude float64
	// InverterCapacityKW is the inverter capacity in kilowatts.
	InverterCapacityKW float64 `gorm:"column:inverter_capacity_kw"`
	// ModuleCapacityKW is the module capacity in kilowatts.
	ModuleCapacityKW float64 `gorm:"column:module_capacity_kw"`
	// CapacityKW is the total capacity in kilowatts.
	CapacityKW float64 `gorm:"column:capacity_kw"`
	// CreatedUTC is the timestamp when the site was registered.
	CreatedUTC time.Time `gorm:"column:created_utc"`
	// SiteGroups are the groups this site is a member of.
	SiteGroups []SiteGroup `gorm:"many2many:site_group_sites;foreignKey:SiteUUID;joinForeignKey:SiteUUID;references:SiteGroupUUID;joinReferences:SiteGroupUUID"`
}

// TableName specifies the database table name for the Site model.
func (Site) TableName() string {
	return "sites"
}
