// Package domain — engagement engine types.
// Streaks, achievement catalog entries, and the stats snapshot fed to
// achievement predicates.
package domain

import "time"

// ─── Streak Types ───────────────────────────────────────────────────────────

// StreakInfo is the derived streak view. Never persisted as a source of
// truth — always recomputed from the entry list.
type StreakInfo struct {
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastActiveDay time.Time `json:"last_active_day"`
	ActiveToday   bool      `json:"active_today"`
}

// ─── Achievement Types ──────────────────────────────────────────────────────

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CatGettingStarted  AchievementCategory = "getting-started"
	CatStreaks         AchievementCategory = "streaks"
	CatJournaling      AchievementCategory = "journaling"
	CatAffirmations    AchievementCategory = "affirmations"
	CatInsights        AchievementCategory = "insights"
	CatAnalytics       AchievementCategory = "analytics"
	CatMilestones      AchievementCategory = "milestones"
	CatPersonalization AchievementCategory = "personalization"
	CatSpecial         AchievementCategory = "special"
)

// AchievementDef defines a single achievement's unlock requirements.
// Predicate and Progress evaluate against a UserStats snapshot; Target is
// the denominator for progress rendering. Pure existence checks use
// Target 1 with a 0-or-1 Progress.
type AchievementDef struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Category    AchievementCategory  `json:"category"`
	Target      int                  `json:"target"`
	Predicate   func(UserStats) bool `json:"-"`
	Progress    func(UserStats) int  `json:"-"`
}

// UnlockedAchievement records when an achievement was earned.
// Created exactly once per id, never updated.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// AchievementProgress is the per-definition row returned to dashboards:
// the definition's display fields plus either the unlock instant or a
// (progress, target) pair clamped so progress never exceeds target.
type AchievementProgress struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlocked_at,omitempty"`
	Progress    int                 `json:"progress"`
	Target      int                 `json:"target"`
}

// UserStats is a snapshot of engagement state fed to achievement
// predicates. Derived counts are computed once per evaluation pass so each
// predicate stays a one-line comparison.
type UserStats struct {
	EntryCount         int    `json:"entry_count"`
	TotalWords         int    `json:"total_words"`
	ActiveDays         int    `json:"active_days"`
	DistinctCategories int    `json:"distinct_categories"`
	MoodEntries        int    `json:"mood_entries"`
	TaggedEntries      int    `json:"tagged_entries"`
	ReflectionEntries  int    `json:"reflection_entries"`
	CurrentStreak      int    `json:"current_streak"`
	LongestStreak      int    `json:"longest_streak"`
	VisitCount         int    `json:"visit_count"`
	AffirmationsViewed int    `json:"affirmations_viewed"`
	InsightsViewed     int    `json:"insights_viewed"`
	HasEarlyEntry      bool   `json:"has_early_entry"` // any entry before 08:00
	HasLateEntry       bool   `json:"has_late_entry"`  // any entry at or after 22:00
	HasSaturdayEntry   bool   `json:"has_saturday_entry"`
	HasSundayEntry     bool   `json:"has_sunday_entry"`
	ProfileName        string `json:"profile_name"`
	CustomAvatar       bool   `json:"custom_avatar"`
	CustomAffirmations int    `json:"custom_affirmations"`
	ThemeChanges       int    `json:"theme_changes"`
}

// ─── Notification Types ─────────────────────────────────────────────────────

// NotificationType categorizes queued notifications.
type NotificationType string

const (
	NotifyAchievement NotificationType = "achievement"
	NotifyStreak      NotificationType = "streak"
	NotifyReminder    NotificationType = "reminder"
)

// Notification is a user-facing message queued for the presentation layer.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	Shown     bool             `json:"shown"`
}

// NotificationPolicy governs how often notifications are queued.
type NotificationPolicy struct {
	MaxPerDay  int    `json:"max_per_day"`
	QuietStart string `json:"quiet_start"` // "22:00"
	QuietEnd   string `json:"quiet_end"`   // "08:00"
}

// DefaultNotificationPolicy returns the shipped policy: at most three
// toasts a day, nothing late at night.
func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{
		MaxPerDay:  3,
		QuietStart: "22:00",
		QuietEnd:   "08:00",
	}
}

// ─── Affirmation Types ──────────────────────────────────────────────────────

// Affirmation is a short motivational line. Custom affirmations carry a
// caller-assigned id; built-in ones use a stable slug.
type Affirmation struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Custom    bool      `json:"custom"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
