package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"momentum/internal/auth"
	"momentum/internal/goalarea"
	"momentum/internal/voice"
	"momentum/internal/win"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&goalarea.GoalArea{},
		&win.Win{},
		&voice.VoiceCapture{},
	); err != nil {
		return err
	}

	stmts := []string{
		// weekly/vault views filter on non-archived rows ordered by event time
		`create index if not exists idx_wins_user_active on wins(user_id, occurred_at desc) where is_archived = false;`,
		`create index if not exists idx_wins_user_area on wins(user_id, goal_area_id);`,
		`create index if not exists idx_goal_areas_user_sort on goal_areas(user_id, sort_order);`,
		`create index if not exists idx_voice_captures_user_created on voice_captures(user_id, created_at desc);`,
		// GIN for text[] filtering on extracted areas
		`create index if not exists idx_voice_captures_areas on voice_captures using gin (goal_area_ids);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
