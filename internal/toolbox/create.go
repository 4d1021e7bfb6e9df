package toolbox

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	sitecontroller "github.com/GoSitesAdmin/GoSitesAdmin/internal/db/controller/site"
)

// DNODescriptor is the distribution network operator form input,
// serialized to JSON before submission.
type DNODescriptor struct {
	DNOID    string `json:"dno_id"`
	Name     string `json:"name"`
	LongName string `json:"long_name"`
}

// GSPDescriptor is the grid supply point form input,
// serialized to JSON before submission.
type GSPDescriptor struct {
	GSPID string `json:"gsp_id"`
	Name  string `json:"name"`
}

// Format renders the descriptor as the JSON string stored on the site.
func (d DNODescriptor) Format() string {
	out, _ := json.Marshal(d)
	return string(out)
}

// Format renders the descriptor as the JSON string stored on the site.
func (g GSPDescriptor) Format() string {
	out, _ := json.Marshal(g)
	return string(out)
}

// CreateNewSite inserts a new site from the form-style fields and returns its
// display view plus a confirmation message. The fields are expected to be
// present (non-empty); any further validation is up to the database layer and
// its errors come back unchanged.
func CreateNewSite(db *gorm.DB, input sitecontroller.CreateInput) (*SiteDetails, string, error) {
	s, err := sitecontroller.Create(db, input)
	if err != nil {
		return nil, "", err
	}

	message := fmt.Sprintf("Site with client site id %s was created successfully.", s.ClientSiteID)

	return siteDetails(s), message, nil
}
