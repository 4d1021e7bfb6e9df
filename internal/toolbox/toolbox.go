// Package toolbox implements the query and mutation helpers behind the sites
// toolbox page. Each helper takes a live database handle plus primitive
// identifiers and returns plain display structures; database errors propagate
// to the caller untranslated.
package toolbox

import (
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sitecontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/site"
	sitegroupcontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/sitegroup"
	usercontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/user"
	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/models"
)

// DefaultSiteGroup is the group the bulk-attach operation targets when no
// group name is given.
const DefaultSiteGroup = "ocf"

const dateAddedFormat = "2006-01-02"

// GetUserDetails returns the sites in the user's group, the group's name,
// and the site count for that group.
func GetUserDetails(db *gorm.DB, email string) (*UserDetails, error) {
	u, err := usercontroller.GetByEmail(db, email)
	if err != nil {
		return nil, err
	}

	return &UserDetails{
		Sites:         siteSummaries(u.SiteGroup.Sites),
		SiteGroupName: u.SiteGroup.SiteGroupName,
		SiteCount:     len(u.SiteGroup.Sites),
	}, nil
}

// GetSiteDetails returns the flattened view of one site's attributes.
func GetSiteDetails(db *gorm.DB, siteUUID uuid.UUID) (*SiteDetails, error) {
	s, err := sitecontroller.Get(db, siteUUID)
	if err != nil {
		return nil, err
	}

	return siteDetails(s), nil
}

// ResolveSiteID resolves a client-assigned site identifier to the site's UUID.
func ResolveSiteID(db *gorm.DB, clientSiteID string) (uuid.UUID, error) {
	s, err := sitecontroller.GetByClientSiteID(db, clientSiteID)
	if err != nil {
		return uuid.Nil, err
	}

	return s.SiteUUID, nil
}

// GetSiteGroupDetails returns the member sites and member user emails of a group.
func GetSiteGroupDetails(db *gorm.DB, siteGroupName string) (*SiteGroupDetails, error) {
	g, err := sitegroupcontroller.GetByName(db, siteGroupName)
	if err != nil {
		return nil, err
	}

	users := make([]string, 0, len(g.Users))
	for _, u := range g.Users {
		users = append(users, u.Email)
	}

	return &SiteGroupDetails{
		Sites: siteSummaries(g.Sites),
		Users: users,
	}, nil
}

// siteSummaries reshapes sites into {site_uuid, client_site_id} pairs.
func siteSummaries(sites []models.Site) []SiteSummary {
	out := make([]SiteSummary, 0, len(sites))
	for _, s := range sites {
		out = append(out, SiteSummary{
			SiteUUID:     s.SiteUUID.String(),
			ClientSiteID: s.ClientSiteID,
		})
	}

	return out
}

// siteDetails flattens a site into its display view.
func siteDetails(s *models.Site) *SiteDetails {
	groupNames := make([]string, 0, len(s.SiteGroups))
	for _, g := range s.SiteGroups {
		groupNames = append(groupNames, g.SiteGroupName)
	}

	return &SiteDetails{
		SiteUUID:         s.SiteUUID.String(),
		MLID:             strconv.Itoa(s.MLID),
		ClientSiteID:     s.ClientSiteID,
		ClientSiteName:   s.ClientSiteName,
		SiteGroupNames:   groupNames,
		Latitude:         formatFloat(s.Latitude),
		Longitude:        formatFloat(s.Longitude),
		Region:           s.Region,
		DNO:              s.DNO,
		GSP:              s.GSP,
		Tilt:             formatFloat(s.Tilt),
		Orientation:      formatFloat(s.Orientation),
		InverterCapacity: formatKW(s.InverterCapacityKW),
		ModuleCapacity:   formatKW(s.ModuleCapacityKW),
		Capacity:         formatKW(s.CapacityKW),
		DateAdded:        s.CreatedUTC.Format(dateAddedFormat),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatKW(v float64) string {
	return formatFloat(v) + " kw"
}
