package users

import (
	"strings"
	"time"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"size:30;uniqueIndex;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	LoggedIn     bool   `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases and trims an email before it is compared
// or stored, so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
