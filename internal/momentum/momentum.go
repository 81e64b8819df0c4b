package momentum

import (
	"math"
	"time"

	"momentum/internal/goalarea"
	"momentum/internal/win"
)

// Level is a display tier for a momentum score. Pure lookup table, not
// persisted.
type Level struct {
	Label    string `json:"label"`
	Emoji    string `json:"emoji"`
	MinScore int    `json:"minScore"`
	Color    string `json:"color"`
}

// Levels in descending minScore order; LevelFor picks the first tier
// whose threshold the score meets.
var Levels = []Level{
	{Label: "Rising", Emoji: "🚀", MinScore: 80, Color: "#10B981"},
	{Label: "Steady", Emoji: "✨", MinScore: 60, Color: "#6366F1"},
	{Label: "Building", Emoji: "🌱", MinScore: 40, Color: "#F59E0B"},
	{Label: "Starting", Emoji: "🌅", MinScore: 0, Color: "#8B5CF6"},
}

func LevelFor(score int) Level {
	for _, l := range Levels {
		if score >= l.MinScore {
			return l
		}
	}
	return Levels[len(Levels)-1]
}

// Score blends weekly completion with a streak bonus, clamped to [0,100].
//
//	completion = min(wins / max(target,1), 1) * 100
//	bonus      = min(streak * 5, 20)
func Score(currentWeekWins, weeklyTarget, streak int) int {
	target := weeklyTarget
	if target < 1 {
		target = 1
	}
	completion := math.Min(float64(currentWeekWins)/float64(target), 1) * 100
	bonus := math.Min(float64(streak)*5, 20)

	score := int(math.Round(completion + bonus))
	if score > 100 {
		score = 100
	}
	return score
}

type Trend string

const (
	TrendUp       Trend = "up"
	TrendStable   Trend = "stable"
	TrendBuilding Trend = "building"
)

// TrendFor is display-only and never feeds back into the score.
func TrendFor(currentWeekWins, weeklyTarget int) Trend {
	switch {
	case currentWeekWins >= weeklyTarget:
		return TrendUp
	case float64(currentWeekWins) >= float64(weeklyTarget)/2:
		return TrendStable
	default:
		return TrendBuilding
	}
}

// StreakFor reports consecutive qualifying weeks for a goal area.
// Streak tracking is not implemented; this always yields 0 until the
// product defines its semantics.
func StreakFor(goalarea.ID) int {
	return 0
}

type AreaMomentum struct {
	GoalAreaID      goalarea.ID `json:"goalAreaId"`
	DisplayName     string      `json:"displayName"`
	Emoji           string      `json:"emoji"`
	Color           string      `json:"color"`
	CurrentWeekWins int         `json:"currentWeekWins"`
	WeeklyTarget    int         `json:"weeklyTarget"`
	Streak          int         `json:"streak"`
	MomentumScore   int         `json:"momentumScore"`
	MomentumLevel   Level       `json:"momentumLevel"`
	Trend           Trend       `json:"trend"`
}

type Overall struct {
	Score int   `json:"score"`
	Level Level `json:"level"`
}

type Snapshot struct {
	Overall    Overall        `json:"overall"`
	ByGoalArea []AreaMomentum `json:"byGoalArea"`
	WeekStart  time.Time      `json:"weekStart"`
	WeekEnd    time.Time      `json:"weekEnd"`
}

// BuildSnapshot derives the momentum snapshot for one week window. Pure
// function of its inputs; identical inputs yield an identical snapshot.
func BuildSnapshot(areas []goalarea.GoalArea, counts map[goalarea.ID]int, window win.Window) Snapshot {
	byArea := make([]AreaMomentum, 0, len(areas))
	total := 0

	for _, area := range areas {
		wins := counts[area.ID]
		streak := StreakFor(area.ID)
		score := Score(wins, area.WeeklyMinWins, streak)
		total += score

		byArea = append(byArea, AreaMomentum{
			GoalAreaID:      area.ID,
			DisplayName:     area.DisplayName,
			Emoji:           area.Emoji,
			Color:           area.Color,
			CurrentWeekWins: wins,
			WeeklyTarget:    area.WeeklyMinWins,
			Streak:          streak,
			MomentumScore:   score,
			MomentumLevel:   LevelFor(score),
			Trend:           TrendFor(wins, area.WeeklyMinWins),
		})
	}

	overall := 0
	if len(byArea) > 0 {
		overall = int(math.Round(float64(total) / float64(len(byArea))))
	}

	return Snapshot{
		Overall:    Overall{Score: overall, Level: LevelFor(overall)},
		ByGoalArea: byArea,
		WeekStart:  window.Start,
		WeekEnd:    window.End,
	}
}
