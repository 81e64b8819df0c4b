package goalarea

// Definition is the static registry entry for one goal area: the name
// used by win extraction, the per-user row defaults, and the ordered
// keyword list for fallback classification.
type Definition struct {
	ID            ID
	Name          string
	DisplayName   string
	Emoji         string
	Color         string
	WeeklyMinWins int
	Intention     string
	SortOrder     int
	Keywords      []string
}

// Registry lists all seven goal areas. Order matters: fallback
// extraction scans areas in this order and stops at the first keyword
// hit.
var Registry = []Definition{
	{
		ID:            PhysicalHealth,
		Name:          "Physical Health",
		DisplayName:   "Physical Health",
		Emoji:         "💪",
		Color:         "#10B981",
		WeeklyMinWins: 4,
		Intention:     "Move my body, feel strong, have energy for what matters",
		SortOrder:     0,
		Keywords:      []string{"exercise", "workout", "gym", "run", "peloton", "yoga", "walk", "swim", "bike", "strength", "cardio", "stretch"},
	},
	{
		ID:            MentalHealth,
		Name:          "Mental Health",
		DisplayName:   "Mental Health",
		Emoji:         "🧠",
		Color:         "#8B5CF6",
		WeeklyMinWins: 3,
		Intention:     "Stay calm, process feelings, maintain clarity",
		SortOrder:     1,
		Keywords:      []string{"meditat", "journal", "therapy", "mindful", "breathing", "gratitude", "read", "relax", "sleep", "self-care"},
	},
	{
		ID:            FamilyIan,
		Name:          "Family: Ian",
		DisplayName:   "Time with Ian",
		Emoji:         "👦",
		Color:         "#F59E0B",
		WeeklyMinWins: 5,
		Intention:     "Be present, play together, create memories",
		SortOrder:     2,
		Keywords:      []string{"ian", "son", "kid", "child", "play", "homework", "school", "teach", "bedtime", "breakfast"},
	},
	{
		ID:            FamilyWife,
		Name:          "Family: Wife",
		DisplayName:   "Time with Wife",
		Emoji:         "❤️",
		Color:         "#EC4899",
		WeeklyMinWins: 3,
		Intention:     "Connect deeply, support each other, enjoy time together",
		SortOrder:     3,
		Keywords:      []string{"wife", "spouse", "partner", "date", "dinner together", "connect", "talk", "listen", "support", "love"},
	},
	{
		ID:            WorkStrategic,
		Name:          "Work: Strategic",
		DisplayName:   "Strategic Work",
		Emoji:         "🎯",
		Color:         "#3B82F6",
		WeeklyMinWins: 3,
		Intention:     "Focus on high-impact work that moves the needle",
		SortOrder:     4,
		Keywords:      []string{"strategy", "okr", "vision", "presentation", "roadmap", "planning", "decision", "meeting", "project", "initiative"},
	},
	{
		ID:            WorkLeadership,
		Name:          "Work: Leadership",
		DisplayName:   "Leadership",
		Emoji:         "👥",
		Color:         "#6366F1",
		WeeklyMinWins: 2,
		Intention:     "Develop the team, have meaningful 1:1s, unblock others",
		SortOrder:     5,
		Keywords:      []string{"1:1", "one on one", "team", "mentor", "feedback", "coaching", "hire", "review", "delegate", "empower"},
	},
	{
		ID:            ContentNewsletter,
		Name:          "Content: Newsletter",
		DisplayName:   "Newsletter",
		Emoji:         "✍️",
		Color:         "#F97316",
		WeeklyMinWins: 1,
		Intention:     "Write consistently, share insights, build audience",
		SortOrder:     6,
		Keywords:      []string{"newsletter", "wrote", "article", "content", "blog", "post", "draft", "publish", "write", "edit"},
	},
}

var registryIndex = func() map[ID]*Definition {
	idx := make(map[ID]*Definition, len(Registry))
	for i := range Registry {
		idx[Registry[i].ID] = &Registry[i]
	}
	return idx
}()

func Lookup(id ID) (*Definition, bool) {
	d, ok := registryIndex[id]
	return d, ok
}
