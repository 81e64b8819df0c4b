package goalarea

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("goal area not found")

type Service struct {
	DB *gorm.DB
}

// List returns the user's goal areas in sort order, provisioning the
// registry defaults on first read. There is no registration flow, so an
// unknown user id simply gets the default seven.
func (s *Service) List(ctx context.Context, userID string) ([]GoalArea, error) {
	var areas []GoalArea
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order asc").
		Find(&areas).Error; err != nil {
		return nil, err
	}
	if len(areas) > 0 {
		return areas, nil
	}

	if err := s.EnsureDefaults(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order asc").
		Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// EnsureDefaults inserts any missing goal area rows from the registry.
func (s *Service) EnsureDefaults(ctx context.Context, userID string) error {
	rows := make([]GoalArea, 0, len(Registry))
	now := time.Now()
	for _, d := range Registry {
		intention := d.Intention
		rows = append(rows, GoalArea{
			ID:            d.ID,
			UserID:        userID,
			DisplayName:   d.DisplayName,
			Emoji:         d.Emoji,
			Color:         d.Color,
			WeeklyMinWins: d.WeeklyMinWins,
			IntentionText: &intention,
			IsActive:      true,
			SortOrder:     d.SortOrder,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// UpdateInput carries the settable fields of a partial update. Nil means
// "leave unchanged".
type UpdateInput struct {
	DisplayName       *string
	Emoji             *string
	WeeklyMinWins     *int
	IntentionText     *string
	FlexibilityBudget *int
	IsActive          *bool
	SortOrder         *int
}

func (s *Service) Update(ctx context.Context, userID string, id ID, in UpdateInput) (*GoalArea, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if in.DisplayName != nil {
		updates["display_name"] = *in.DisplayName
	}
	if in.Emoji != nil {
		updates["emoji"] = *in.Emoji
	}
	if in.WeeklyMinWins != nil {
		updates["weekly_min_wins"] = *in.WeeklyMinWins
	}
	if in.IntentionText != nil {
		updates["intention_text"] = *in.IntentionText
	}
	if in.FlexibilityBudget != nil {
		updates["flexibility_budget"] = *in.FlexibilityBudget
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.SortOrder != nil {
		updates["sort_order"] = *in.SortOrder
	}

	res := s.DB.WithContext(ctx).
		Model(&GoalArea{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var area GoalArea
	if err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}
