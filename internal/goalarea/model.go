package goalarea

import "time"

// ID is the closed set of goal area identifiers. Wins and keyword lists
// are keyed by it; free strings are rejected at the boundary via Valid.
type ID string

const (
	PhysicalHealth    ID = "physical_health"
	MentalHealth      ID = "mental_health"
	FamilyIan         ID = "family_ian"
	FamilyWife        ID = "family_wife"
	WorkStrategic     ID = "work_strategic"
	WorkLeadership    ID = "work_leadership"
	ContentNewsletter ID = "content_newsletter"
)

func (id ID) Valid() bool {
	_, ok := registryIndex[id]
	return ok
}

// GoalArea is one row per (id, user). Display fields start from the
// registry defaults and are editable per user.
type GoalArea struct {
	ID                ID        `gorm:"type:varchar(32);primaryKey" json:"id"`
	UserID            string    `gorm:"type:uuid;primaryKey" json:"userId"`
	DisplayName       string    `gorm:"size:100;not null" json:"displayName"`
	Emoji             string    `gorm:"size:10;not null" json:"emoji"`
	Color             string    `gorm:"size:20;not null" json:"color"`
	WeeklyMinWins     int       `gorm:"not null;default:3" json:"weeklyMinWins"`
	IntentionText     *string   `gorm:"type:text" json:"intentionText"`
	FlexibilityBudget int       `gorm:"not null;default:0" json:"flexibilityBudget"`
	IsActive          bool      `gorm:"not null;default:true" json:"isActive"`
	SortOrder         int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt         time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}
