package win

import (
	"time"

	"momentum/internal/goalarea"
)

type CaptureMethod string

const (
	CaptureVoice  CaptureMethod = "voice"
	CaptureTap    CaptureMethod = "tap"
	CaptureManual CaptureMethod = "manual"
	CaptureImport CaptureMethod = "import"
)

func (m CaptureMethod) Valid() bool {
	switch m {
	case CaptureVoice, CaptureTap, CaptureManual, CaptureImport:
		return true
	}
	return false
}

// Win is a logged accomplishment. Immutable after creation except for
// archival.
type Win struct {
	ID              string        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string        `gorm:"type:uuid;index;not null" json:"userId"`
	GoalAreaID      goalarea.ID   `gorm:"type:varchar(32);index;not null" json:"goalAreaId"`
	Title           string        `gorm:"size:500;not null" json:"title"`
	Description     *string       `gorm:"type:text" json:"description"`
	Duration        *int          `json:"duration"`
	EnergyBoost     *int          `json:"energyBoost"`
	OccurredAt      time.Time     `gorm:"index;not null" json:"occurredAt"`
	CapturedAt      time.Time     `gorm:"not null;default:now()" json:"capturedAt"`
	CaptureMethod   CaptureMethod `gorm:"type:varchar(10);not null;default:'manual'" json:"captureMethod"`
	VoiceTranscript *string       `gorm:"type:text" json:"voiceTranscript"`
	IsArchived      bool          `gorm:"not null;default:false" json:"isArchived"`
	CreatedAt       time.Time     `gorm:"not null;default:now()" json:"createdAt"`
}
