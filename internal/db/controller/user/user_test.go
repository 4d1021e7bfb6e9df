package user

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

// seedGroup inserts a site group row directly.
func seedGroup(t *testing.T, db *gorm.DB, name string) models.SiteGroup {
	t.Helper()

	g := models.SiteGroup{
		SiteGroupUUID: uuid.New(),
		SiteGroupName: name,
		CreatedUTC:    time.Now().UTC(),
	}
	require.NoError(t, db.Create(&g).Error, "failed to seed site group")

	return g
}

func TestGetByEmail(t *testing.T) {
	db := setupTestDB(t)

	g := seedGroup(t, db, "ocf")

	created, err := Create(db, "operator@example.com", g.SiteGroupUUID)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		email         string
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			email:         "operator@example.com",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty email",
			dbParam:       db,
			email:         "",
			expectedError: ErrEmailEmpty,
		},
		{
			name:          "user not found",
			dbParam:       db,
			email:         "unknown@example.com",
			expectedError: ErrUserNotFound,
		},
		{
			name:    "successful get",
			dbParam: db,
			email:   "operator@example.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := GetByEmail(tc.dbParam, tc.email)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				require.NotNil(t, found)
				assert.Equal(t, created.UserUUID, found.UserUUID)
				assert.Equal(t, "ocf", found.SiteGroup.SiteGroupName)
			}
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	g := seedGroup(t, db, "ocf")

	for _, email := range []string{"b@example.com", "a@example.com"} {
		_, err := Create(db, email, g.SiteGroupUUID)
		require.NoError(t, err)
	}

	users, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// ordered by email
	assert.Equal(t, "a@example.com", users[0].Email)
}

func TestUpdateSiteGroup(t *testing.T) {
	db := setupTestDB(t)

	groupA := seedGroup(t, db, "group-a")
	seedGroup(t, db, "group-b")

	_, err := Create(db, "operator@example.com", groupA.SiteGroupUUID)
	require.NoError(t, err)

	t.Run("group not found", func(t *testing.T) {
		updated, err := UpdateSiteGroup(db, "operator@example.com", "nonexistent")
		require.ErrorIs(t, err, ErrSiteGroupNotFound)
		assert.Nil(t, updated)
	})

	t.Run("user not found", func(t *testing.T) {
		updated, err := UpdateSiteGroup(db, "unknown@example.com", "group-b")
		require.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, updated)
	})

	t.Run("replaces the assignment", func(t *testing.T) {
		updated, err := UpdateSiteGroup(db, "operator@example.com", "group-b")
		require.NoError(t, err)
		assert.Equal(t, "group-b", updated.SiteGroup.SiteGroupName)

		// exactly one assignment afterwards, the old one is gone
		found, err := GetByEmail(db, "operator@example.com")
		require.NoError(t, err)
		assert.Equal(t, "group-b", found.SiteGroup.SiteGroupName)
		assert.NotEqual(t, groupA.SiteGroupUUID, found.SiteGroupUUID)
	})
}
