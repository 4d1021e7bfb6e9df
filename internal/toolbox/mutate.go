package toolbox

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sitecontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/site"
	sitegroupcontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/sitegroup"
	usercontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/user"
)

// AttachSiteToGroup idempotently adds a site to the named group and returns
// the group's updated site list along with the full list of groups the site
// now belongs to. Memberships in other groups are never touched.
func AttachSiteToGroup(db *gorm.DB, siteUUID uuid.UUID, siteGroupName string) (*AttachResult, error) {
	groupSites, err := sitegroupcontroller.AddSite(db, siteUUID, siteGroupName)
	if err != nil {
		return nil, err
	}

	s, err := sitecontroller.Get(db, siteUUID)
	if err != nil {
		return nil, err
	}

	siteGroups := make([]string, 0, len(s.SiteGroups))
	for _, g := range s.SiteGroups {
		siteGroups = append(siteGroups, g.SiteGroupName)
	}

	return &AttachResult{
		SiteGroupName: siteGroupName,
		GroupSites:    siteSummaries(groupSites),
		SiteGroups:    siteGroups,
	}, nil
}

// ChangeUserSiteGroup moves a user to the named group, replacing the previous
// assignment, and returns the new assignment for confirmation.
func ChangeUserSiteGroup(db *gorm.DB, email, siteGroupName string) (*UserAssignment, error) {
	if _, err := usercontroller.UpdateSiteGroup(db, email, siteGroupName); err != nil {
		return nil, err
	}

	u, err := usercontroller.GetByEmail(db, email)
	if err != nil {
		return nil, err
	}

	return &UserAssignment{
		Email:         u.Email,
		SiteGroupName: u.SiteGroup.SiteGroupName,
	}, nil
}

// AddAllSitesToGroup adds every site that is not yet a member to the named
// group (DefaultSiteGroup when empty). Each addition persists on its own, so
// a mid-batch failure leaves the completed additions in place and a re-run
// picks up the remainder. Running it again once complete adds nothing.
func AddAllSitesToGroup(db *gorm.DB, siteGroupName string) (*BulkAttachResult, error) {
	if siteGroupName == "" {
		siteGroupName = DefaultSiteGroup
	}

	allSites, err := sitecontroller.GetAll(db)
	if err != nil {
		return nil, err
	}

	group, err := sitegroupcontroller.GetByName(db, siteGroupName)
	if err != nil {
		return nil, err
	}

	members := make(map[uuid.UUID]struct{}, len(group.Sites))
	for _, s := range group.Sites {
		members[s.SiteUUID] = struct{}{}
	}

	sitesAdded := make([]string, 0)

	for _, s := range allSites {
		if _, ok := members[s.SiteUUID]; ok {
			continue
		}

		if _, err = sitegroupcontroller.AddSite(db, s.SiteUUID, siteGroupName); err != nil {
			return nil, err
		}

		sitesAdded = append(sitesAdded, s.SiteUUID.String())
	}

	message := fmt.Sprintf("Added %d sites to group %s.", len(sitesAdded), siteGroupName)
	if len(sitesAdded) == 0 {
		message = fmt.Sprintf("There are no new sites to be added to %s.", siteGroupName)
	}

	return &BulkAttachResult{
		Message:    message,
		SitesAdded: sitesAdded,
	}, nil
}
