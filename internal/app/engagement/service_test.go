package engagement_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/app/engagement"
	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

func testService(t *testing.T) *engagement.Service {
	t.Helper()
	return engagement.NewService(testDB(t), time.UTC)
}

func TestService_AddEntryValidation(t *testing.T) {
	svc := testService(t)

	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1"}); !errors.Is(err, domain.ErrEmptyEntry) {
		t.Errorf("empty accomplishment: err = %v, want ErrEmptyEntry", err)
	}
	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "x", Mood: "ecstatic"}); !errors.Is(err, domain.ErrInvalidMood) {
		t.Errorf("unknown mood: err = %v, want ErrInvalidMood", err)
	}

	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "first"}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "again"}); !errors.Is(err, domain.ErrEntryExists) {
		t.Errorf("duplicate id: err = %v, want ErrEntryExists", err)
	}
}

func TestService_FirstEntryUnlocks(t *testing.T) {
	svc := testService(t)

	newly, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "started journaling"})
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if len(newly) == 0 || newly[0].ID != "first-entry" {
		t.Fatalf("unlocks = %+v, want first-entry first", newly)
	}

	state, err := svc.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if !state.HasAchievement("first-entry") {
		t.Error("first-entry not persisted")
	}
	if state.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", state.CurrentStreak)
	}
}

func TestService_StreakAcrossDays(t *testing.T) {
	svc := testService(t)
	now := time.Now().UTC()

	entries := []domain.JournalEntry{
		{ID: "y", Accomplishment: "yesterday win", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "t1", Accomplishment: "today win", CreatedAt: now},
		{ID: "t2", Accomplishment: "another today win", CreatedAt: now},
	}
	for _, e := range entries {
		if _, err := svc.AddEntry(e); err != nil {
			t.Fatalf("AddEntry %s: %v", e.ID, err)
		}
	}

	info, err := svc.Streak()
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if info.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2 (same-day entries collapse)", info.CurrentStreak)
	}
	if !info.ActiveToday {
		t.Error("expected ActiveToday")
	}
}

func TestService_RecordVisit(t *testing.T) {
	svc := testService(t)

	state, err := svc.RecordVisit()
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if state.VisitCount != 1 || state.CurrentStreak != 1 {
		t.Errorf("first visit: count=%d streak=%d", state.VisitCount, state.CurrentStreak)
	}

	state, err = svc.RecordVisit()
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if state.VisitCount != 2 {
		t.Errorf("VisitCount = %d, want 2", state.VisitCount)
	}
	if state.CurrentStreak != 1 {
		t.Errorf("same-day visit streak = %d, want 1", state.CurrentStreak)
	}
}

func TestService_AffirmationViewUnlocks(t *testing.T) {
	svc := testService(t)

	newly, err := svc.RecordAffirmationView()
	if err != nil {
		t.Fatalf("RecordAffirmationView: %v", err)
	}
	found := false
	for _, def := range newly {
		if def.ID == "first-affirmation" {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocks = %+v, want first-affirmation", newly)
	}
}

func TestService_InsightViewDedupe(t *testing.T) {
	svc := testService(t)

	// A known id counts once no matter how often it is viewed.
	for i := 0; i < 3; i++ {
		if _, err := svc.RecordInsightView("weekly-mood"); err != nil {
			t.Fatalf("RecordInsightView: %v", err)
		}
	}
	state, err := svc.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if state.InsightsViewed != 1 {
		t.Errorf("InsightsViewed = %d, want 1 (repeat id deduplicated)", state.InsightsViewed)
	}

	// An anonymous view always counts.
	if _, err := svc.RecordInsightView(""); err != nil {
		t.Fatalf("RecordInsightView: %v", err)
	}
	if _, err := svc.RecordInsightView(""); err != nil {
		t.Fatalf("RecordInsightView: %v", err)
	}
	state, _ = svc.State()
	if state.InsightsViewed != 3 {
		t.Errorf("InsightsViewed = %d, want 3", state.InsightsViewed)
	}
}

func TestService_CheckAndUnlockIdempotent(t *testing.T) {
	svc := testService(t)

	if err := svc.Store().SaveProfile(domain.Profile{Name: "Ada"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	newly, err := svc.CheckAndUnlockAchievements()
	if err != nil {
		t.Fatalf("CheckAndUnlockAchievements: %v", err)
	}
	found := false
	for _, def := range newly {
		if def.ID == "profile-name" {
			found = true
		}
	}
	if !found {
		t.Fatalf("unlocks = %+v, want profile-name", newly)
	}

	again, err := svc.CheckAndUnlockAchievements()
	if err != nil {
		t.Fatalf("second CheckAndUnlockAchievements: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second pass unlocked %+v, want nothing", again)
	}
}

func TestService_AchievementProgressRows(t *testing.T) {
	svc := testService(t)

	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "one"}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	rows, err := svc.AchievementProgress()
	if err != nil {
		t.Fatalf("AchievementProgress: %v", err)
	}
	if len(rows) != len(engagement.Catalog()) {
		t.Fatalf("got %d rows, want %d", len(rows), len(engagement.Catalog()))
	}
	for _, r := range rows {
		if r.ID == "first-entry" && !r.Unlocked {
			t.Error("first-entry row not marked unlocked")
		}
		if r.ID == "entries-5" && (r.Unlocked || r.Progress != 1) {
			t.Errorf("entries-5 row: unlocked=%v progress=%d, want locked at 1", r.Unlocked, r.Progress)
		}
	}
}

func TestService_Summarize(t *testing.T) {
	svc := testService(t)

	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "wrote three words", Reflection: "felt fine"}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if _, err := svc.RecordVisit(); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if _, err := svc.RecordAffirmationView(); err != nil {
		t.Fatalf("RecordAffirmationView: %v", err)
	}

	sum, err := svc.Summarize()
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.EntryCount != 1 || sum.TotalWords != 5 || sum.ActiveDays != 1 {
		t.Errorf("entries=%d words=%d days=%d, want 1/5/1", sum.EntryCount, sum.TotalWords, sum.ActiveDays)
	}
	if sum.VisitCount != 1 || sum.AffirmationsViewed != 1 {
		t.Errorf("visits=%d affirmations=%d, want 1/1", sum.VisitCount, sum.AffirmationsViewed)
	}
	if sum.TotalAchievements != 40 {
		t.Errorf("TotalAchievements = %d, want 40", sum.TotalAchievements)
	}
	if sum.UnlockedAchievements == 0 {
		t.Error("UnlockedAchievements = 0, want at least first-entry")
	}
	if sum.Streak.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", sum.Streak.CurrentStreak)
	}
}

func TestService_StatePersistsAcrossInstances(t *testing.T) {
	db := testDB(t)
	svc := engagement.NewService(db, time.UTC)

	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "durable win"}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	// A fresh service over the same database sees the same state.
	svc2 := engagement.NewService(db, time.UTC)
	state, err := svc2.State()
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if len(state.Entries) != 1 || !state.HasAchievement("first-entry") {
		t.Errorf("state did not persist: entries=%d", len(state.Entries))
	}
}

func TestService_Subscribe(t *testing.T) {
	svc := testService(t)

	var events []string
	svc.Subscribe(func(event string) { events = append(events, event) })

	if _, err := svc.AddEntry(domain.JournalEntry{ID: "e1", Accomplishment: "win"}); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	if len(events) == 0 || events[0] != engagement.EventEntryAdded {
		t.Fatalf("events = %v, want entry first", events)
	}
	// first-entry unlocked in the same pass, so the achievement event follows.
	if len(events) < 2 || events[1] != engagement.EventAchievement {
		t.Errorf("events = %v, want achievement after entry", events)
	}
}
