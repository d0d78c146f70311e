package engagement

import (
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// SideInputs are the optional external collaborators a few achievement
// predicates read. Absent inputs leave the zero value, which makes the
// corresponding predicates false — never an error.
type SideInputs struct {
	Profile            domain.Profile
	CustomAffirmations int
	ThemeChanges       int
}

// Morning entries end before this hour; late entries start at LateHour.
const (
	EarlyHour = 8
	LateHour  = 22
)

// BuildUserStats derives the snapshot achievement predicates evaluate
// against. Counts are computed in one pass over the entry list so the
// catalog's predicates stay single comparisons.
func BuildUserStats(state domain.EngagementState, side SideInputs, now time.Time, loc *time.Location) domain.UserStats {
	stats := domain.UserStats{
		EntryCount:         len(state.Entries),
		VisitCount:         state.VisitCount,
		AffirmationsViewed: state.AffirmationsViewed,
		InsightsViewed:     state.InsightsViewed,
		ProfileName:        side.Profile.Name,
		CustomAvatar:       side.Profile.HasCustomAvatar(),
		CustomAffirmations: side.CustomAffirmations,
		ThemeChanges:       side.ThemeChanges,
	}

	categories := make(map[string]bool)
	days := make(map[time.Time]bool)
	for _, e := range state.Entries {
		stats.TotalWords += e.WordCount()
		days[dayOf(e.CreatedAt, loc)] = true
		if e.Category != "" {
			categories[e.Category] = true
		}
		if e.Mood != "" {
			stats.MoodEntries++
		}
		if len(e.Tags) > 0 {
			stats.TaggedEntries++
		}
		if e.Reflection != "" {
			stats.ReflectionEntries++
		}

		local := e.CreatedAt.In(loc)
		if local.Hour() < EarlyHour {
			stats.HasEarlyEntry = true
		}
		if local.Hour() >= LateHour {
			stats.HasLateEntry = true
		}
		switch local.Weekday() {
		case time.Saturday:
			stats.HasSaturdayEntry = true
		case time.Sunday:
			stats.HasSundayEntry = true
		}
	}
	stats.ActiveDays = len(days)
	stats.DistinctCategories = len(categories)

	streak := CalculateStreak(state.Entries, now, loc)
	stats.CurrentStreak = streak.CurrentStreak
	stats.LongestStreak = streak.LongestStreak
	if stats.LongestStreak < state.LongestStreak {
		stats.LongestStreak = state.LongestStreak
	}

	return stats
}
