// Package domain holds the Kintsugi journal types.
// Entries are append-only: the engine reads and appends, never edits.
package domain

import (
	"strings"
	"time"
)

// Mood is the optional feeling attached to a journal entry.
type Mood string

const (
	MoodGreat     Mood = "great"
	MoodGood      Mood = "good"
	MoodOkay      Mood = "okay"
	MoodLow       Mood = "low"
	MoodDifficult Mood = "difficult"
)

// Valid reports whether m is one of the five known moods.
// The empty mood is valid — mood is optional on an entry.
func (m Mood) Valid() bool {
	switch m {
	case "", MoodGreat, MoodGood, MoodOkay, MoodLow, MoodDifficult:
		return true
	}
	return false
}

// JournalEntry is a single accomplishment record.
// The ID is caller-assigned and opaque to the engine.
// Immutable once created.
type JournalEntry struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Accomplishment string    `json:"accomplishment"`
	Reflection     string    `json:"reflection,omitempty"`
	Category       string    `json:"category,omitempty"`
	Mood           Mood      `json:"mood,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
}

// WordCount counts words across the accomplishment and reflection fields.
func (e JournalEntry) WordCount() int {
	return len(strings.Fields(e.Accomplishment)) + len(strings.Fields(e.Reflection))
}

// DefaultAvatar is the placeholder avatar assigned before the user picks one.
const DefaultAvatar = "seedling"

// Profile is the optional user profile stored beside the engagement state.
// Absent profile means personalization predicates are simply false.
type Profile struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// HasCustomAvatar reports whether the avatar differs from the placeholder.
func (p Profile) HasCustomAvatar() bool {
	return p.Avatar != "" && p.Avatar != DefaultAvatar
}

// EngagementState is the singleton aggregate per user-device: every counter,
// entry, and unlocked achievement. It is persisted as one JSON blob and
// follows a read-entire-state, mutate, write-entire-state discipline.
type EngagementState struct {
	LastVisit          time.Time             `json:"last_visit"`
	VisitCount         int                   `json:"visit_count"`
	CurrentStreak      int                   `json:"current_streak"`
	LongestStreak      int                   `json:"longest_streak"`
	AffirmationsViewed int                   `json:"affirmations_viewed"`
	InsightsViewed     int                   `json:"insights_viewed"`
	ViewedInsightIDs   map[string]bool       `json:"viewed_insight_ids"`
	Entries            []JournalEntry        `json:"entries"`
	Achievements       []UnlockedAchievement `json:"achievements"`
	ReminderEnabled    bool                  `json:"reminder_enabled"`
}

// NewEngagementState returns the zero/default aggregate used on first run
// and as the fallback for malformed persisted blobs.
func NewEngagementState() EngagementState {
	return EngagementState{
		ViewedInsightIDs: make(map[string]bool),
		Entries:          []JournalEntry{},
		Achievements:     []UnlockedAchievement{},
	}
}

// Normalize backfills fields a partial blob may have left nil and restores
// the longest >= current streak invariant. Called after every load.
func (s *EngagementState) Normalize() {
	if s.ViewedInsightIDs == nil {
		s.ViewedInsightIDs = make(map[string]bool)
	}
	if s.Entries == nil {
		s.Entries = []JournalEntry{}
	}
	if s.Achievements == nil {
		s.Achievements = []UnlockedAchievement{}
	}
	if s.LongestStreak < s.CurrentStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (s EngagementState) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
