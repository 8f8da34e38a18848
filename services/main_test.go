package services

import (
	"fmt"
	"strings"
	"testing"

	"event-feedback-service/config"
	"event-feedback-service/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated to the full
// schema. The name is derived from the test so parallel packages never
// share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Speaker{},
		&models.Event{},
		&models.Survey{},
		&models.Comment{},
	))
	return db
}

// newTestConfig returns a config suitable for tests
func newTestConfig() *config.Config {
	return &config.Config{
		SessionSecret:        "test-secret",
		SessionTTLMinutes:    60,
		ItemsPerPage:         2,
		DefaultAdminPassword: "admin123",
	}
}

// newTestRedis starts an in-process Redis and returns a client bound to it
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// mustCreate inserts a record and fails the test on error
func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	require.NoError(t, db.Create(value).Error)
}

// linkSpeaker attaches a speaker to an event through the join table
func linkSpeaker(t *testing.T, db *gorm.DB, event *models.Event, speaker *models.Speaker) {
	t.Helper()
	require.NoError(t, db.Model(event).Association("Speakers").Append(speaker))
}
