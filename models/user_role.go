package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole grants an extra role beyond the one on the profile,
// e.g. a seller who is also an admin.
type UserRole struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string `json:"user_id" gorm:"not null;type:varchar(36);index"`
	Role   string `json:"role" gorm:"not null"`
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func MigrateUserRole(db *gorm.DB) {
	db.AutoMigrate(&UserRole{})
}

// HasRole reports whether the user holds the role directly or via user_roles.
func HasRole(db *gorm.DB, userID, role string) bool {
	var profile Profile
	if err := db.First(&profile, "id = ?", userID).Error; err == nil && profile.Role == role {
		return true
	}
	var count int64
	db.Model(&UserRole{}).Where("user_id = ? AND role = ?", userID, role).Count(&count)
	return count > 0
}
