package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/authz"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/config"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Vacancy{},
		&models.Application{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: 24 * time.Hour,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FullName:     "Test " + role,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func actorFor(user models.User) authz.Actor {
	return authz.Actor{ID: user.ID, Email: user.Email, Role: user.Role}
}

func createTestVacancy(t *testing.T, db *gorm.DB, ownerID uint, status string) models.Vacancy {
	t.Helper()

	vacancy := models.Vacancy{
		Title:       "Backend Developer " + strconv.FormatUint(uint64(ownerID), 10),
		Description: "Build and run backend services",
		Company:     "Acme",
		Status:      status,
		CreatedByID: ownerID,
	}
	require.NoError(t, db.Create(&vacancy).Error)
	return vacancy
}
