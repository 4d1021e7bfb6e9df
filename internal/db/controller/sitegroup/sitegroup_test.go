package sitegroup

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.SetupJoinTable(&models.SiteGroup{}, "Sites", &models.SiteGroupSite{})
	require.NoError(t, err, "failed to set up join table")

	err = db.AutoMigrate(&models.Site{}, &models.SiteGroup{}, &models.User{}, &models.SiteGroupSite{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSite inserts a site row directly.
func seedSite(t *testing.T, db *gorm.DB, clientSiteID string) models.Site {
	t.Helper()

	s := models.Site{
		SiteUUID:     uuid.New(),
		MLID:         1,
		ClientSiteID: clientSiteID,
		CreatedUTC:   time.Now().UTC(),
	}
	require.NoError(t, db.Create(&s).Error, "failed to seed site")

	return s
}

func TestGetByName(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "ocf")
	require.NoError(t, err)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		groupName     string
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			groupName:     "ocf",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			groupName:     "",
			expectedError: ErrSiteGroupNameEmpty,
		},
		{
			name:          "group not found",
			dbParam:       db,
			groupName:     "nonexistent",
			expectedError: ErrSiteGroupNotFound,
		},
		{
			name:      "successful get",
			dbParam:   db,
			groupName: "ocf",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := GetByName(tc.dbParam, tc.groupName)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, created.SiteGroupUUID, found.SiteGroupUUID)
				assert.Empty(t, found.Sites)
				assert.Empty(t, found.Users)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	t.Run("successful create", func(t *testing.T) {
		created, err := Create(db, "ocf")
		require.NoError(t, err)
		assert.Equal(t, "ocf", created.SiteGroupName)
		assert.NotEqual(t, uuid.Nil, created.SiteGroupUUID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		created, err := Create(db, "ocf")
		require.ErrorIs(t, err, ErrSiteGroupAlreadyExists)
		assert.Nil(t, created)
	})

	t.Run("empty name", func(t *testing.T) {
		created, err := Create(db, "")
		require.ErrorIs(t, err, ErrSiteGroupNameEmpty)
		assert.Nil(t, created)
	})
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"ocf", "client-a", "client-b"} {
		_, err := Create(db, name)
		require.NoError(t, err)
	}

	groups, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// ordered by name
	assert.Equal(t, "client-a", groups[0].SiteGroupName)
	assert.Equal(t, "ocf", groups[2].SiteGroupName)
}

func TestAddSite(t *testing.T) {
	db := setupTestDB(t)

	_, err := Create(db, "ocf")
	require.NoError(t, err)
	other, err := Create(db, "other")
	require.NoError(t, err)

	s := seedSite(t, db, "client-1")

	t.Run("site not found", func(t *testing.T) {
		sites, err := AddSite(db, uuid.New(), "ocf")
		require.ErrorIs(t, err, ErrSiteNotFound)
		assert.Nil(t, sites)
	})

	t.Run("group not found", func(t *testing.T) {
		sites, err := AddSite(db, s.SiteUUID, "nonexistent")
		require.ErrorIs(t, err, ErrSiteGroupNotFound)
		assert.Nil(t, sites)
	})

	t.Run("adds membership", func(t *testing.T) {
		sites, err := AddSite(db, s.SiteUUID, "ocf")
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, s.SiteUUID, sites[0].SiteUUID)
	})

	t.Run("second add is a no-op", func(t *testing.T) {
		sites, err := AddSite(db, s.SiteUUID, "ocf")
		require.NoError(t, err)
		assert.Len(t, sites, 1)

		var count int64
		err = db.Model(&models.SiteGroupSite{}).
			Where("site_uuid = ?", s.SiteUUID).Count(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("other groups are untouched", func(t *testing.T) {
		_, err := AddSite(db, s.SiteUUID, "other")
		require.NoError(t, err)

		ocf, err := GetByName(db, "ocf")
		require.NoError(t, err)
		assert.Len(t, ocf.Sites, 1)

		otherGroup, err := GetByName(db, other.SiteGroupName)
		require.NoError(t, err)
		assert.Len(t, otherGroup.Sites, 1)
	})
}
