package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID primary keys
	"gorm.io/gorm"           // GORM hooks
)

// Role codes seeded at startup
const (
	RoleAdmin = "Admin" // Full access, including user administration
	RoleUser  = "User"  // Default role assigned at registration
)

// User Model
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`               // UUID primary key
	Email        string    `gorm:"size:256;not null;uniqueIndex" json:"email"` // Unique, stored lowercased
	UserName     string    `gorm:"size:256;not null" json:"userName"`          // Login name, same as email
	PasswordHash string    `gorm:"size:255;not null" json:"-"`                 // Bcrypt hash, never serialized
	FullName     *string   `gorm:"size:200" json:"fullName"`                   // Optional display name
	CreatedAt    time.Time `gorm:"not null;index" json:"createdAt"`            // Creation time
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`                  // Last update time

	Roles []Role `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE" json:"-"` // Role set
}

// BeforeCreate assigns a UUID when the caller did not set one
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// RoleNames returns the role codes of the user
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// Role Model
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`                     // Primary key
	Name string `gorm:"size:32;not null;uniqueIndex" json:"name"` // Role code: Admin or User
}
