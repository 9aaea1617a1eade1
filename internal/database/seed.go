package database

import (
	"errors"
	"log/slog"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/config"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedUsers creates the ADMIN and GESTOR accounts when their emails are
// absent. Accounts without a configured password are skipped.
func SeedUsers(db *gorm.DB, cfg *config.Config) error {
	seeds := []struct {
		fullName string
		email    string
		role     string
		password string
	}{
		{"Admin User", cfg.AdminEmail, models.RoleAdmin, cfg.AdminPassword},
		{"Manager User", cfg.ManagerEmail, models.RoleGestor, cfg.ManagerPassword},
	}

	for _, s := range seeds {
		if s.email == "" || s.password == "" {
			continue
		}

		var existing models.User
		err := db.Where("email = ?", s.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			FullName:     s.fullName,
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         s.role,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		slog.Info("seed user created", "email", s.email, "role", s.role)
	}

	return nil
}
