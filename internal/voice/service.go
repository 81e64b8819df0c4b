package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type RecordInput struct {
	Transcript string
	Wins       []ExtractedWin
	Source     Source
	Status     string
}

// Record persists a processed capture.
func (s *Service) Record(ctx context.Context, userID string, in RecordInput) error {
	wins := in.Wins
	if wins == nil {
		wins = []ExtractedWin{}
	}
	payload, err := json.Marshal(wins)
	if err != nil {
		return fmt.Errorf("marshal extracted wins: %w", err)
	}

	seen := map[string]struct{}{}
	areaIDs := make(pq.StringArray, 0, len(wins))
	for _, w := range wins {
		id := string(w.GoalAreaID)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		areaIDs = append(areaIDs, id)
	}

	capture := VoiceCapture{
		ID:            uuid.New().String(),
		UserID:        userID,
		Transcript:    in.Transcript,
		ExtractedWins: payload,
		GoalAreaIDs:   areaIDs,
		Source:        string(in.Source),
		Status:        in.Status,
		CreatedAt:     time.Now(),
	}
	return s.DB.WithContext(ctx).Create(&capture).Error
}

// List returns the user's capture log, newest first.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]VoiceCapture, error) {
	var captures []VoiceCapture
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&captures).Error
	return captures, err
}
