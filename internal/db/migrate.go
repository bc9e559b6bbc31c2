package db

import (
	"errors" // Error inspection
	"fmt"    // Error wrapping
	"strings"

	"partner_management/internal/domain" // Importing domain models
	"partner_management/internal/utils"  // Password hashing

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.Info("Migration completed.")
	return nil
}

// SeedRoles makes sure the Admin and User roles exist
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		role := domain.Role{Name: name}
		if err := db.Where(domain.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
	}
	return nil
}

// SeedAdmin creates the admin account if it does not exist yet. Empty email skips seeding.
func SeedAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	var existing domain.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil // Already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}
	if errs := utils.ValidatePassword(password); len(errs) > 0 {
		return fmt.Errorf("admin password rejected: %s", strings.Join(errs, " "))
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var admin domain.Role
		if err := tx.Where("name = ?", domain.RoleAdmin).First(&admin).Error; err != nil {
			return fmt.Errorf("admin role missing: %w", err)
		}
		fullName := "System Administrator"
		user := domain.User{
			Email:        email,
			UserName:     email,
			PasswordHash: hash,
			FullName:     &fullName,
			Roles:        []domain.Role{admin},
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		logrus.WithField("email", email).Info("Admin user seeded")
		return nil
	})
}

// Initialize migrates the schema and seeds roles and the admin account
func Initialize(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := Migrate(db); err != nil {
		return err
	}
	if err := SeedRoles(db); err != nil {
		return err
	}
	return SeedAdmin(db, adminEmail, adminPassword)
}
