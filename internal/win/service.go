package win

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"momentum/internal/goalarea"
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	GoalAreaID      goalarea.ID
	Title           string
	Description     *string
	Duration        *int
	EnergyBoost     *int
	OccurredAt      time.Time
	CaptureMethod   CaptureMethod
	VoiceTranscript *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*Win, error) {
	now := time.Now()
	w := Win{
		ID:              uuid.New().String(),
		UserID:          userID,
		GoalAreaID:      in.GoalAreaID,
		Title:           in.Title,
		Description:     in.Description,
		Duration:        in.Duration,
		EnergyBoost:     in.EnergyBoost,
		OccurredAt:      in.OccurredAt,
		CapturedAt:      now,
		CaptureMethod:   in.CaptureMethod,
		VoiceTranscript: in.VoiceTranscript,
		CreatedAt:       now,
	}
	if err := s.DB.WithContext(ctx).Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWeekly returns non-archived wins inside the window, newest first.
func (s *Service) ListWeekly(ctx context.Context, userID string, window Window) ([]Win, error) {
	var wins []Win
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND is_archived = false AND occurred_at >= ? AND occurred_at < ?",
			userID, window.Start, window.End).
		Order("occurred_at desc").
		Find(&wins).Error
	return wins, err
}

// ListVault returns a page of non-archived wins, newest first.
func (s *Service) ListVault(ctx context.Context, userID string, limit, offset int) ([]Win, error) {
	var wins []Win
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND is_archived = false", userID).
		Order("occurred_at desc").
		Limit(limit).
		Offset(offset).
		Find(&wins).Error
	return wins, err
}

// ListLog returns the full win log, optionally filtered by goal area.
// Unlike the other views it includes archived rows.
func (s *Service) ListLog(ctx context.Context, userID string, area *goalarea.ID) ([]Win, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if area != nil {
		q = q.Where("goal_area_id = ?", *area)
	}

	var wins []Win
	err := q.Order("occurred_at desc").Find(&wins).Error
	return wins, err
}

// WeeklyCounts returns per-area non-archived win counts inside the window.
func (s *Service) WeeklyCounts(ctx context.Context, userID string, window Window) (map[goalarea.ID]int, error) {
	type areaCount struct {
		GoalAreaID goalarea.ID `gorm:"column:goal_area_id"`
		Count      int         `gorm:"column:count"`
	}

	var rows []areaCount
	err := s.DB.WithContext(ctx).
		Model(&Win{}).
		Select("goal_area_id, count(*) as count").
		Where("user_id = ? AND is_archived = false AND occurred_at >= ? AND occurred_at < ?",
			userID, window.Start, window.End).
		Group("goal_area_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[goalarea.ID]int, len(rows))
	for _, r := range rows {
		counts[r.GoalAreaID] = r.Count
	}
	return counts, nil
}
