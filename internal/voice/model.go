package voice

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

const (
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// VoiceCapture is the persisted record of one processed voice upload.
// GoalAreaIDs denormalizes the extracted areas for filtering.
type VoiceCapture struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string          `gorm:"type:uuid;index;not null" json:"userId"`
	Transcript    string          `gorm:"type:text;not null" json:"transcript"`
	ExtractedWins json.RawMessage `gorm:"type:jsonb;not null;default:'[]'::jsonb" json:"extractedWins"`
	GoalAreaIDs   pq.StringArray  `gorm:"type:text[];not null;default:'{}'" json:"goalAreaIds"`
	Source        string          `gorm:"size:20" json:"source"`
	Status        string          `gorm:"size:20;not null;default:'complete'" json:"status"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"createdAt"`
}
