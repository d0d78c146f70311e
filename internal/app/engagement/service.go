package engagement

import (
	"log"
	"sync"
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/domain"
	"github.com/kintsugi-journal/kintsugi/internal/infra/metrics"
	"github.com/kintsugi-journal/kintsugi/internal/infra/sqlite"
)

// Event names passed to change listeners.
const (
	EventVisit       = "visit"
	EventEntryAdded  = "entry"
	EventAffirmation = "affirmation"
	EventInsight     = "insight"
	EventAchievement = "achievement"
)

// Service is the synchronous caller API over the engagement engine.
// Every mutating operation follows the same cycle: load the entire state,
// mutate in memory, re-derive streaks, run the achievement evaluator,
// write the entire state back, then fire listeners.
//
// The mutex is the explicit mutual-exclusion boundary around that
// read-modify-write cycle; the HTTP API makes concurrent callers possible.
type Service struct {
	mu       sync.Mutex
	store    *Store
	notifier *Notifier // nil disables toasts
	loc      *time.Location

	listeners []func(event string)

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates the engagement service with the default notification
// policy. loc controls calendar-day bucketing for streaks and hour-of-day
// achievements.
func NewService(db *sqlite.DB, loc *time.Location) *Service {
	return NewServiceWithPolicy(db, loc, domain.DefaultNotificationPolicy())
}

// NewServiceWithPolicy creates the engagement service with a custom
// notification policy.
func NewServiceWithPolicy(db *sqlite.DB, loc *time.Location, policy domain.NotificationPolicy) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		store:    NewStore(db),
		notifier: NewNotifierWithPolicy(db, loc, policy),
		loc:      loc,
		now:      time.Now,
	}
}

// Store exposes the underlying state store (profile, custom affirmations).
func (s *Service) Store() *Store { return s.store }

// Notifier exposes the toast queue.
func (s *Service) Notifier() *Notifier { return s.notifier }

// Subscribe registers a fire-and-forget change listener. Listeners run
// synchronously after a successful save; they must not call back into the
// service.
func (s *Service) Subscribe(fn func(event string)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Service) emit(event string) {
	for _, fn := range s.listeners {
		fn(event)
	}
}

// ─── Recording operations ───────────────────────────────────────────────────

// RecordVisit notes an app open: last-visit, visit count, and the coarse
// visit streak. Returns the updated state.
func (s *Service) RecordVisit() (domain.EngagementState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return state, err
	}

	now := s.now()
	ApplyVisit(&state, now, s.loc)

	if _, err := s.evaluate(&state, now); err != nil {
		return state, err
	}
	if err := s.store.SaveState(state); err != nil {
		return state, err
	}

	metrics.Visits.Inc()
	s.emit(EventVisit)
	return state, nil
}

// AddEntry validates and appends a journal entry, recomputes the entry
// streak, and runs the evaluator. Returns any newly unlocked achievements
// in catalog order — callers typically toast the first.
func (s *Service) AddEntry(entry domain.JournalEntry) ([]domain.AchievementDef, error) {
	if entry.Accomplishment == "" {
		metrics.EntriesRejected.WithLabelValues("empty").Inc()
		return nil, domain.ErrEmptyEntry
	}
	if !entry.Mood.Valid() {
		metrics.EntriesRejected.WithLabelValues("mood").Inc()
		return nil, domain.ErrInvalidMood
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}
	for _, existing := range state.Entries {
		if existing.ID == entry.ID {
			metrics.EntriesRejected.WithLabelValues("duplicate").Inc()
			return nil, domain.ErrEntryExists
		}
	}

	now := s.now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	state.Entries = append(state.Entries, entry)

	info := ApplyEntryStreak(&state, now, s.loc)
	metrics.CurrentStreakDays.Set(float64(info.CurrentStreak))

	newly, err := s.evaluate(&state, now)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveState(state); err != nil {
		return nil, err
	}

	metrics.EntriesRecorded.Inc()
	s.emit(EventEntryAdded)
	if len(newly) > 0 {
		s.emit(EventAchievement)
	}
	return newly, nil
}

// RecordAffirmationView increments the affirmations-viewed counter.
func (s *Service) RecordAffirmationView() ([]domain.AchievementDef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}
	state.AffirmationsViewed++

	now := s.now()
	newly, err := s.evaluate(&state, now)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveState(state); err != nil {
		return nil, err
	}

	metrics.AffirmationViews.Inc()
	s.emit(EventAffirmation)
	return newly, nil
}

// RecordInsightView increments the insights-viewed counter. When an id is
// supplied, it is added to the viewed set and the counter only moves for
// ids not seen before; an empty id always counts.
func (s *Service) RecordInsightView(id string) ([]domain.AchievementDef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}

	if id == "" {
		state.InsightsViewed++
	} else if !state.ViewedInsightIDs[id] {
		state.ViewedInsightIDs[id] = true
		state.InsightsViewed++
	}

	now := s.now()
	newly, err := s.evaluate(&state, now)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveState(state); err != nil {
		return nil, err
	}

	metrics.InsightViews.Inc()
	s.emit(EventInsight)
	return newly, nil
}

// UpdateStreakFromEntries recomputes the streak fields from the entry list
// and persists them. Used after out-of-band data changes (e.g. import).
func (s *Service) UpdateStreakFromEntries() (domain.StreakInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return domain.StreakInfo{}, err
	}

	now := s.now()
	info := ApplyEntryStreak(&state, now, s.loc)
	metrics.CurrentStreakDays.Set(float64(info.CurrentStreak))

	if _, err := s.evaluate(&state, now); err != nil {
		return info, err
	}
	if err := s.store.SaveState(state); err != nil {
		return info, err
	}
	return info, nil
}

// CheckAndUnlockAchievements runs a standalone evaluation pass and
// persists any change. Safe to call repeatedly: a second call with
// unchanged state unlocks nothing.
func (s *Service) CheckAndUnlockAchievements() ([]domain.AchievementDef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}

	newly, err := s.evaluate(&state, s.now())
	if err != nil {
		return nil, err
	}
	if len(newly) == 0 {
		return nil, nil
	}
	if err := s.store.SaveState(state); err != nil {
		return nil, err
	}
	s.emit(EventAchievement)
	return newly, nil
}

// evaluate runs the catalog against current state plus side inputs,
// appending unlocks in place. Caller holds the lock and persists.
func (s *Service) evaluate(state *domain.EngagementState, now time.Time) ([]domain.AchievementDef, error) {
	side, err := s.store.LoadSideInputs()
	if err != nil {
		return nil, err
	}
	stats := BuildUserStats(*state, side, now, s.loc)
	newly := CheckAndUnlock(state, stats, now)

	for _, def := range newly {
		metrics.AchievementsUnlocked.WithLabelValues(string(def.Category)).Inc()
	}
	if s.notifier != nil && len(newly) > 0 {
		if err := s.notifier.NotifyUnlocks(newly, now); err != nil {
			// Toast delivery is best-effort; the unlock itself is persisted.
			log.Printf("[engagement] notify unlocks: %v", err)
		}
	}
	return newly, nil
}

// ─── Read operations ────────────────────────────────────────────────────────

// State returns the current engagement aggregate.
func (s *Service) State() (domain.EngagementState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadState()
}

// Streak derives the entry-based streak without persisting anything.
func (s *Service) Streak() (domain.StreakInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return domain.StreakInfo{}, err
	}
	info := CalculateStreak(state.Entries, s.now(), s.loc)
	if info.LongestStreak < state.LongestStreak {
		info.LongestStreak = state.LongestStreak
	}
	return info, nil
}

// AchievementProgress reports one row per catalog definition, in catalog
// order, for dashboard rendering.
func (s *Service) AchievementProgress() ([]domain.AchievementProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return nil, err
	}
	side, err := s.store.LoadSideInputs()
	if err != nil {
		return nil, err
	}
	stats := BuildUserStats(state, side, s.now(), s.loc)
	return ProgressAll(state, stats), nil
}

// Summary is the dashboard payload: streak plus headline counters.
type Summary struct {
	Streak               domain.StreakInfo `json:"streak"`
	EntryCount           int               `json:"entry_count"`
	TotalWords           int               `json:"total_words"`
	ActiveDays           int               `json:"active_days"`
	VisitCount           int               `json:"visit_count"`
	AffirmationsViewed   int               `json:"affirmations_viewed"`
	InsightsViewed       int               `json:"insights_viewed"`
	UnlockedAchievements int               `json:"unlocked_achievements"`
	TotalAchievements    int               `json:"total_achievements"`
}

// Summarize builds the dashboard summary in one pass.
func (s *Service) Summarize() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState()
	if err != nil {
		return Summary{}, err
	}
	side, err := s.store.LoadSideInputs()
	if err != nil {
		return Summary{}, err
	}

	now := s.now()
	stats := BuildUserStats(state, side, now, s.loc)
	info := CalculateStreak(state.Entries, now, s.loc)
	if info.LongestStreak < state.LongestStreak {
		info.LongestStreak = state.LongestStreak
	}

	return Summary{
		Streak:               info,
		EntryCount:           stats.EntryCount,
		TotalWords:           stats.TotalWords,
		ActiveDays:           stats.ActiveDays,
		VisitCount:           state.VisitCount,
		AffirmationsViewed:   state.AffirmationsViewed,
		InsightsViewed:       state.InsightsViewed,
		UnlockedAchievements: len(state.Achievements),
		TotalAchievements:    len(Catalog()),
	}, nil
}
