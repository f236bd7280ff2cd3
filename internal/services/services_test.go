package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"trs-service/internal/apperrors"
	"trs-service/internal/config"
	"trs-service/internal/models"
)

// newTestDB opens a fresh in-memory database with the full schema, using
// the same connection path as the testing profile.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{Env: config.EnvTesting, DBDriver: "sqlite", DBPath: ":memory:"}
	db, err := config.ConnectDatabase(cfg)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, config.MigrateDatabase(db), "failed to migrate test database")
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "irrelevant"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProject(t *testing.T, db *gorm.DB, owner uint, name string) *models.Project {
	t.Helper()
	project := &models.Project{Owner: owner, Name: name}
	require.NoError(t, db.Create(project).Error)
	return project
}

// requireAppError asserts that err is a taxonomy error of the given kind
// carrying the given client message.
func requireAppError(t *testing.T, err error, kind apperrors.Kind, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind)
	require.Equal(t, message, appErr.Message)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
