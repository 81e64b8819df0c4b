package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"momentum/internal/auth"
	"momentum/internal/goalarea"
)

// Seed provisions the demo user and their seven default goal areas.
// Idempotent: re-running returns the existing user id.
func Seed(gdb *gorm.DB) (string, error) {
	const email = "demo@momentum2026.app"

	var existing auth.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	now := time.Now()
	user := auth.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  "Demo User",
		Timezone:     "America/Los_Angeles",
		WeekStartDay: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := gdb.Create(&user).Error; err != nil {
		return "", err
	}

	svc := &goalarea.Service{DB: gdb}
	if err := svc.EnsureDefaults(context.Background(), user.ID); err != nil {
		return "", err
	}

	return user.ID, nil
}
