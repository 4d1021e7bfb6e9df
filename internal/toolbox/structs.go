package toolbox

// SiteSummary is the {site_uuid, client_site_id} pair shown in listings.
type SiteSummary struct {
	SiteUUID     string `json:"site_uuid"`
	ClientSiteID string `json:"client_site_id"`
}

// UserDetails is the display view for a single user: the sites in their
// group, the group's name, and how many sites that group contains.
type UserDetails struct {
	Sites         []SiteSummary `json:"sites"`
	SiteGroupName string        `json:"site_group_name"`
	SiteCount     int           `json:"site_count"`
}

// SiteDetails is the flattened display view of all site attributes. Numeric
// capacity fields carry a unit suffix and date_added is rendered YYYY-MM-DD.
type SiteDetails struct {
	SiteUUID         string   `json:"site_uuid"`
	MLID             string   `json:"ml_id"`
	ClientSiteID     string   `json:"client_site_id"`
	ClientSiteName   string   `json:"client_site_name"`
	SiteGroupNames   []string `json:"site_group_names"`
	Latitude         string   `json:"latitude"`
	Longitude        string   `json:"longitude"`
	Region           string   `json:"region"`
	DNO              string   `json:"DNO"`
	GSP              string   `json:"GSP"`
	Tilt             string   `json:"tilt"`
	Orientation      string   `json:"orientation"`
	InverterCapacity string   `json:"inverter_capacity_kw"`
	ModuleCapacity   string   `json:"module_capacity_kw"`
	Capacity         string   `json:"capacity"`
	DateAdded        string   `json:"date_added"`
}

// SiteGroupDetails is the display view for a single site group.
type SiteGroupDetails struct {
	Sites []SiteSummary `json:"sites"`
	Users []string      `json:"users"`
}

// AttachResult is the confirmation view after attaching a site to a group.
type AttachResult struct {
	SiteGroupName string        `json:"site_group_name"`
	GroupSites    []SiteSummary `json:"group_sites"`
	SiteGroups    []string      `json:"site_groups"`
}

// UserAssignment is the confirmation view after reassigning a user's group.
type UserAssignment struct {
	Email         string `json:"email"`
	SiteGroupName string `json:"site_group_name"`
}

// BulkAttachResult is the outcome of attaching all sites to one group.
type BulkAttachResult struct {
	Message    string   `json:"message"`
	SitesAdded []string `json:"sites_added"`
}
