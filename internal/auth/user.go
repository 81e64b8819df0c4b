package auth

import "time"

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	DisplayName  string    `gorm:"size:100;not null"`
	Timezone     string    `gorm:"size:50;not null;default:'America/Los_Angeles'"`
	WeekStartDay int       `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
}
