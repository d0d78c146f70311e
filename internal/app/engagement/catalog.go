package engagement

import (
	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// ─── Achievement Catalog ────────────────────────────────────────────────────
// 40 achievements across 9 categories. Declaration order is a user-visible
// contract: when several unlock in one pass, callers toast the first.

// Catalog returns the full achievement catalog.
func Catalog() []domain.AchievementDef {
	return []domain.AchievementDef{
		// ── Getting Started (4) ────────────────────────────────────────
		{
			ID: "first-entry", Title: "First Step", Category: domain.CatGettingStarted,
			Icon: "🌱", Description: "Write your first accomplishment.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.EntryCount >= 1 },
			Progress:  func(s domain.UserStats) int { return s.EntryCount },
		},
		{
			ID: "first-reflection", Title: "Looking Inward", Category: domain.CatGettingStarted,
			Icon: "🪞", Description: "Add a reflection to an entry.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.ReflectionEntries >= 1 },
			Progress:  func(s domain.UserStats) int { return s.ReflectionEntries },
		},
		{
			ID: "first-affirmation", Title: "Kind Words", Category: domain.CatGettingStarted,
			Icon: "💛", Description: "View your first affirmation.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.AffirmationsViewed >= 1 },
			Progress:  func(s domain.UserStats) int { return s.AffirmationsViewed },
		},
		{
			ID: "first-insight", Title: "Curious Mind", Category: domain.CatGettingStarted,
			Icon: "💡", Description: "Read your first insight.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.InsightsViewed >= 1 },
			Progress:  func(s domain.UserStats) int { return s.InsightsViewed },
		},

		// ── Streaks (6) ────────────────────────────────────────────────
		{
			ID: "streak-3", Title: "Three in a Row", Category: domain.CatStreaks,
			Icon: "🔥", Description: "Journal 3 days in a row.", Target: 3,
			Predicate: func(s domain.UserStats) bool { return s.CurrentStreak >= 3 },
			Progress:  func(s domain.UserStats) int { return s.CurrentStreak },
		},
		{
			ID: "streak-7", Title: "Week Warrior", Category: domain.CatStreaks,
			Icon: "🔥", Description: "Journal 7 days in a row.", Target: 7,
			Predicate: func(s domain.UserStats) bool { return s.CurrentStreak >= 7 },
			Progress:  func(s domain.UserStats) int { return s.CurrentStreak },
		},
		{
			ID: "streak-14", Title: "Fortnight Flame", Category: domain.CatStreaks,
			Icon: "🕯️", Description: "Journal 14 days in a row.", Target: 14,
			Predicate: func(s domain.UserStats) bool { return s.CurrentStreak >= 14 },
			Progress:  func(s domain.UserStats) int { return s.CurrentStreak },
		},
		{
			ID: "streak-30", Title: "Monthly Momentum", Category: domain.CatStreaks,
			Icon: "🌙", Description: "Journal 30 days in a row.", Target: 30,
			Predicate: func(s domain.UserStats) bool { return s.CurrentStreak >= 30 },
			Progress:  func(s domain.UserStats) int { return s.CurrentStreak },
		},
		{
			ID: "streak-60", Title: "Deep Groove", Category: domain.CatStreaks,
			Icon: "⛰️", Description: "Journal 60 days in a row.", Target: 60,
			Predicate: func(s domain.UserStats) bool { return s.CurrentStreak >= 60 },
			Progress:  func(s domain.UserStats) int { return s.CurrentStreak },
		},
		{
			ID: "streak-100", Title: "Centurion", Category: domain.CatStreaks,
			Icon: "🏛️", Description: "Journal 100 days in a row.", Target: 100,
			Predicate: func(s domain.UserStats) bool { return s.CurrentStreak >= 100 },
			Progress:  func(s domain.UserStats) int { return s.CurrentStreak },
		},

		// ── Journaling (5) ─────────────────────────────────────────────
		{
			ID: "entries-5", Title: "Getting Going", Category: domain.CatJournaling,
			Icon: "📝", Description: "Record 5 accomplishments.", Target: 5,
			Predicate: func(s domain.UserStats) bool { return s.EntryCount >= 5 },
			Progress:  func(s domain.UserStats) int { return s.EntryCount },
		},
		{
			ID: "entries-10", Title: "Ten Wins", Category: domain.CatJournaling,
			Icon: "📖", Description: "Record 10 accomplishments.", Target: 10,
			Predicate: func(s domain.UserStats) bool { return s.EntryCount >= 10 },
			Progress:  func(s domain.UserStats) int { return s.EntryCount },
		},
		{
			ID: "entries-20", Title: "Chronicler", Category: domain.CatJournaling,
			Icon: "📚", Description: "Record 20 accomplishments.", Target: 20,
			Predicate: func(s domain.UserStats) bool { return s.EntryCount >= 20 },
			Progress:  func(s domain.UserStats) int { return s.EntryCount },
		},
		{
			ID: "entries-50", Title: "Dedicated Diarist", Category: domain.CatJournaling,
			Icon: "🗂️", Description: "Record 50 accomplishments.", Target: 50,
			Predicate: func(s domain.UserStats) bool { return s.EntryCount >= 50 },
			Progress:  func(s domain.UserStats) int { return s.EntryCount },
		},
		{
			ID: "entries-100", Title: "Hundred Moments", Category: domain.CatJournaling,
			Icon: "💯", Description: "Record 100 accomplishments.", Target: 100,
			Predicate: func(s domain.UserStats) bool { return s.EntryCount >= 100 },
			Progress:  func(s domain.UserStats) int { return s.EntryCount },
		},

		// ── Affirmations (4) ───────────────────────────────────────────
		{
			ID: "affirmations-10", Title: "Daily Boost", Category: domain.CatAffirmations,
			Icon: "☀️", Description: "View 10 affirmations.", Target: 10,
			Predicate: func(s domain.UserStats) bool { return s.AffirmationsViewed >= 10 },
			Progress:  func(s domain.UserStats) int { return s.AffirmationsViewed },
		},
		{
			ID: "affirmations-25", Title: "Self-Talk Student", Category: domain.CatAffirmations,
			Icon: "🌤️", Description: "View 25 affirmations.", Target: 25,
			Predicate: func(s domain.UserStats) bool { return s.AffirmationsViewed >= 25 },
			Progress:  func(s domain.UserStats) int { return s.AffirmationsViewed },
		},
		{
			ID: "affirmations-50", Title: "Inner Cheerleader", Category: domain.CatAffirmations,
			Icon: "📣", Description: "View 50 affirmations.", Target: 50,
			Predicate: func(s domain.UserStats) bool { return s.AffirmationsViewed >= 50 },
			Progress:  func(s domain.UserStats) int { return s.AffirmationsViewed },
		},
		{
			ID: "affirmations-100", Title: "Hundred Suns", Category: domain.CatAffirmations,
			Icon: "🌞", Description: "View 100 affirmations.", Target: 100,
			Predicate: func(s domain.UserStats) bool { return s.AffirmationsViewed >= 100 },
			Progress:  func(s domain.UserStats) int { return s.AffirmationsViewed },
		},

		// ── Insights (4) ───────────────────────────────────────────────
		{
			ID: "insights-5", Title: "Pattern Spotter", Category: domain.CatInsights,
			Icon: "🔍", Description: "Read 5 insights.", Target: 5,
			Predicate: func(s domain.UserStats) bool { return s.InsightsViewed >= 5 },
			Progress:  func(s domain.UserStats) int { return s.InsightsViewed },
		},
		{
			ID: "insights-15", Title: "Self Scholar", Category: domain.CatInsights,
			Icon: "🎓", Description: "Read 15 insights.", Target: 15,
			Predicate: func(s domain.UserStats) bool { return s.InsightsViewed >= 15 },
			Progress:  func(s domain.UserStats) int { return s.InsightsViewed },
		},
		{
			ID: "insights-30", Title: "Inner Cartographer", Category: domain.CatInsights,
			Icon: "🗺️", Description: "Read 30 insights.", Target: 30,
			Predicate: func(s domain.UserStats) bool { return s.InsightsViewed >= 30 },
			Progress:  func(s domain.UserStats) int { return s.InsightsViewed },
		},
		{
			ID: "insights-50", Title: "Sage", Category: domain.CatInsights,
			Icon: "🦉", Description: "Read 50 insights.", Target: 50,
			Predicate: func(s domain.UserStats) bool { return s.InsightsViewed >= 50 },
			Progress:  func(s domain.UserStats) int { return s.InsightsViewed },
		},

		// ── Analytics (5) ──────────────────────────────────────────────
		{
			ID: "wordsmith", Title: "Wordsmith", Category: domain.CatAnalytics,
			Icon: "✒️", Description: "Write 1,000 words across your entries.", Target: 1000,
			Predicate: func(s domain.UserStats) bool { return s.TotalWords >= 1000 },
			Progress:  func(s domain.UserStats) int { return s.TotalWords },
		},
		{
			ID: "novelist", Title: "Novelist", Category: domain.CatAnalytics,
			Icon: "🖋️", Description: "Write 10,000 words across your entries.", Target: 10000,
			Predicate: func(s domain.UserStats) bool { return s.TotalWords >= 10000 },
			Progress:  func(s domain.UserStats) int { return s.TotalWords },
		},
		{
			ID: "categories-5", Title: "Well Rounded", Category: domain.CatAnalytics,
			Icon: "🎨", Description: "Use 5 different categories.", Target: 5,
			Predicate: func(s domain.UserStats) bool { return s.DistinctCategories >= 5 },
			Progress:  func(s domain.UserStats) int { return s.DistinctCategories },
		},
		{
			ID: "mood-tracker", Title: "Mood Mapper", Category: domain.CatAnalytics,
			Icon: "🌈", Description: "Log a mood on 5 entries.", Target: 5,
			Predicate: func(s domain.UserStats) bool { return s.MoodEntries >= 5 },
			Progress:  func(s domain.UserStats) int { return s.MoodEntries },
		},
		{
			ID: "tag-collector", Title: "Tag Collector", Category: domain.CatAnalytics,
			Icon: "🏷️", Description: "Tag 10 entries.", Target: 10,
			Predicate: func(s domain.UserStats) bool { return s.TaggedEntries >= 10 },
			Progress:  func(s domain.UserStats) int { return s.TaggedEntries },
		},

		// ── Milestones (4) ─────────────────────────────────────────────
		{
			ID: "days-7", Title: "A Week of Wins", Category: domain.CatMilestones,
			Icon: "📅", Description: "Journal on 7 different days.", Target: 7,
			Predicate: func(s domain.UserStats) bool { return s.ActiveDays >= 7 },
			Progress:  func(s domain.UserStats) int { return s.ActiveDays },
		},
		{
			ID: "days-30", Title: "A Month of Wins", Category: domain.CatMilestones,
			Icon: "🗓️", Description: "Journal on 30 different days.", Target: 30,
			Predicate: func(s domain.UserStats) bool { return s.ActiveDays >= 30 },
			Progress:  func(s domain.UserStats) int { return s.ActiveDays },
		},
		{
			ID: "visits-50", Title: "Regular", Category: domain.CatMilestones,
			Icon: "🚪", Description: "Open the app 50 times.", Target: 50,
			Predicate: func(s domain.UserStats) bool { return s.VisitCount >= 50 },
			Progress:  func(s domain.UserStats) int { return s.VisitCount },
		},
		{
			ID: "visits-100", Title: "Devoted", Category: domain.CatMilestones,
			Icon: "🏡", Description: "Open the app 100 times.", Target: 100,
			Predicate: func(s domain.UserStats) bool { return s.VisitCount >= 100 },
			Progress:  func(s domain.UserStats) int { return s.VisitCount },
		},

		// ── Personalization (4) ────────────────────────────────────────
		{
			ID: "profile-name", Title: "Nice to Meet You", Category: domain.CatPersonalization,
			Icon: "👋", Description: "Add your name to your profile.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.ProfileName != "" },
			Progress:  func(s domain.UserStats) int { return boolProgress(s.ProfileName != "") },
		},
		{
			ID: "new-look", Title: "New Look", Category: domain.CatPersonalization,
			Icon: "🖼️", Description: "Choose your own avatar.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.CustomAvatar },
			Progress:  func(s domain.UserStats) int { return boolProgress(s.CustomAvatar) },
		},
		{
			ID: "custom-affirmation", Title: "In Your Own Words", Category: domain.CatPersonalization,
			Icon: "💬", Description: "Write a custom affirmation.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.CustomAffirmations >= 1 },
			Progress:  func(s domain.UserStats) int { return s.CustomAffirmations },
		},
		{
			ID: "theme-changer", Title: "Redecorator", Category: domain.CatPersonalization,
			Icon: "🎭", Description: "Change the app theme.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.ThemeChanges >= 1 },
			Progress:  func(s domain.UserStats) int { return s.ThemeChanges },
		},

		// ── Special (4) ────────────────────────────────────────────────
		{
			ID: "early-bird", Title: "Early Bird", Category: domain.CatSpecial,
			Icon: "🐦", Description: "Journal before 8 in the morning.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.HasEarlyEntry },
			Progress:  func(s domain.UserStats) int { return boolProgress(s.HasEarlyEntry) },
		},
		{
			ID: "night-owl", Title: "Night Owl", Category: domain.CatSpecial,
			Icon: "🦉", Description: "Journal after 10 at night.", Target: 1,
			Predicate: func(s domain.UserStats) bool { return s.HasLateEntry },
			Progress:  func(s domain.UserStats) int { return boolProgress(s.HasLateEntry) },
		},
		{
			ID: "weekend-warrior", Title: "Weekend Warrior", Category: domain.CatSpecial,
			Icon: "🛡️", Description: "Journal on a Saturday and a Sunday.", Target: 2,
			Predicate: func(s domain.UserStats) bool { return s.HasSaturdayEntry && s.HasSundayEntry },
			Progress: func(s domain.UserStats) int {
				return boolProgress(s.HasSaturdayEntry) + boolProgress(s.HasSundayEntry)
			},
		},
		{
			ID: "reflective-5", Title: "Deep Diver", Category: domain.CatSpecial,
			Icon: "🌊", Description: "Reflect on 5 entries.", Target: 5,
			Predicate: func(s domain.UserStats) bool { return s.ReflectionEntries >= 5 },
			Progress:  func(s domain.UserStats) int { return s.ReflectionEntries },
		},
	}
}

func boolProgress(b bool) int {
	if b {
		return 1
	}
	return 0
}
