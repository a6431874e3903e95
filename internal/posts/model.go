package posts

import "time"

type Post struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Age         int    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
