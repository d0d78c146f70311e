// Package engagement implements the Kintsugi engagement engine:
// streak derivation, the achievement catalog, the unlock evaluator, and
// progress reporting. All derivation is pure state-threading; persistence
// sits at the boundary in Store and Service.
package engagement

import (
	"sort"
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// CalculateStreak derives the entry-based day streak.
// Timestamps are bucketed to calendar days in loc; multiple entries on one
// day collapse to a single active day. The current streak counts back from
// today (or yesterday, if today has no entry yet) with strict one-day
// continuity — any larger gap ends it. A most-recent day earlier than
// yesterday means the streak has lapsed to zero.
func CalculateStreak(entries []domain.JournalEntry, now time.Time, loc *time.Location) domain.StreakInfo {
	if len(entries) == 0 {
		return domain.StreakInfo{}
	}

	days := uniqueDays(entries, loc)
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) }) // descending

	today := dayOf(now, loc)
	yesterday := today.AddDate(0, 0, -1)

	info := domain.StreakInfo{
		LastActiveDay: days[0],
		ActiveToday:   days[0].Equal(today),
	}

	// Current streak: most recent active day must be today or yesterday.
	if days[0].Equal(today) || days[0].Equal(yesterday) {
		info.CurrentStreak = 1
		for i := 1; i < len(days); i++ {
			if days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
				info.CurrentStreak++
				continue
			}
			break
		}
	}

	// Longest streak: single ascending scan tracking the longest run.
	run := 1
	longest := 1
	for i := len(days) - 2; i >= 0; i-- {
		if days[i].Equal(days[i+1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	// The current run may not have closed yet.
	if longest < info.CurrentStreak {
		longest = info.CurrentStreak
	}
	info.LongestStreak = longest

	return info
}

// ApplyVisit updates the visit-based signal on the state: last visit,
// visit count, and the coarse visit streak. This is deliberately separate
// from the entry streak — a user can visit without journaling.
// Day difference 0 leaves the streak alone, 1 extends it, >1 resets to 1.
func ApplyVisit(state *domain.EngagementState, now time.Time, loc *time.Location) {
	today := dayOf(now, loc)

	switch {
	case state.LastVisit.IsZero():
		state.CurrentStreak = 1
	case dayOf(state.LastVisit, loc).Equal(today):
		// Same day — streak unchanged.
	case dayOf(state.LastVisit, loc).Equal(today.AddDate(0, 0, -1)):
		state.CurrentStreak++
	default:
		state.CurrentStreak = 1
	}

	state.LastVisit = now
	state.VisitCount++
	if state.LongestStreak < state.CurrentStreak {
		state.LongestStreak = state.CurrentStreak
	}
}

// ApplyEntryStreak recomputes the streak fields on the state from its
// entry list. Longest never decreases: a previously recorded longest run
// survives even if older entries were recorded out of band.
func ApplyEntryStreak(state *domain.EngagementState, now time.Time, loc *time.Location) domain.StreakInfo {
	info := CalculateStreak(state.Entries, now, loc)
	state.CurrentStreak = info.CurrentStreak
	if state.LongestStreak < info.LongestStreak {
		state.LongestStreak = info.LongestStreak
	}
	info.LongestStreak = state.LongestStreak
	return info
}

// dayOf truncates an instant to its calendar day in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// uniqueDays returns the distinct calendar days carrying at least one entry.
func uniqueDays(entries []domain.JournalEntry, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool, len(entries))
	var days []time.Time
	for _, e := range entries {
		day := dayOf(e.CreatedAt, loc)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days
}
