package win

import "time"

// Window is a half-open [Start, End) time range.
type Window struct {
	Start time.Time
	End   time.Time
}

// CurrentWeek returns the week window containing now: the most recent
// Monday 00:00 in now's location through the following Monday, end
// exclusive. A win occurring exactly at Monday 00:00 belongs to that
// week; the prior Sunday 23:59:59 does not.
func CurrentWeek(now time.Time) Window {
	days := (int(now.Weekday()) + 6) % 7 // days since Monday
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -days)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
