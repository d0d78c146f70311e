package engagement_test

import (
	"testing"
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/app/engagement"
	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// noQuietPolicy never enters quiet hours, so cap tests are deterministic.
func noQuietPolicy(maxPerDay int) domain.NotificationPolicy {
	return domain.NotificationPolicy{MaxPerDay: maxPerDay, QuietStart: "00:00", QuietEnd: "00:00"}
}

func TestNotifier_DailyCap(t *testing.T) {
	n := engagement.NewNotifierWithPolicy(testDB(t), time.UTC, noQuietPolicy(2))
	at := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		id, err := n.Notify(domain.Notification{
			Type: domain.NotifyAchievement, Title: "t", Body: "b", CreatedAt: at.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Notify %d: %v", i, err)
		}
		if id == 0 {
			t.Fatalf("Notify %d suppressed under the cap", i)
		}
	}

	id, err := n.Notify(domain.Notification{
		Type: domain.NotifyStreak, Title: "t", Body: "b", CreatedAt: at.Add(5 * time.Minute),
	})
	if err != nil {
		t.Fatalf("Notify over cap: %v", err)
	}
	if id != 0 {
		t.Error("third notification of the day was not suppressed")
	}
}

func TestNotifier_QuietHours(t *testing.T) {
	n := engagement.NewNotifierWithPolicy(testDB(t), time.UTC, domain.DefaultNotificationPolicy())

	cases := []struct {
		name      string
		hour, min int
		wantQueue bool
	}{
		{"midday", 12, 0, true},
		{"last minute before quiet", 21, 59, true},
		{"quiet start", 22, 0, false},
		{"past midnight", 1, 30, false}, // window wraps midnight
		{"quiet end minus one", 7, 59, false},
		{"quiet end", 8, 0, true},
	}
	day := 10
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Each case its own day so the daily cap never interferes.
			day++
			at := time.Date(2025, 7, day, tc.hour, tc.min, 0, 0, time.UTC)
			id, err := n.Notify(domain.Notification{
				Type: domain.NotifyReminder, Title: "t", Body: "b", CreatedAt: at,
			})
			if err != nil {
				t.Fatalf("Notify: %v", err)
			}
			if got := id != 0; got != tc.wantQueue {
				t.Errorf("queued = %v, want %v", got, tc.wantQueue)
			}
		})
	}
}

func TestNotifier_NotifyUnlocksToastsFirstOnly(t *testing.T) {
	n := engagement.NewNotifierWithPolicy(testDB(t), time.UTC, noQuietPolicy(10))
	at := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	unlocked := []domain.AchievementDef{
		{ID: "first-entry", Title: "First Step", Icon: "🌱", Description: "Write your first accomplishment."},
		{ID: "entries-5", Title: "Getting Going", Icon: "📝", Description: "Record 5 accomplishments."},
	}
	if err := n.NotifyUnlocks(unlocked, at); err != nil {
		t.Fatalf("NotifyUnlocks: %v", err)
	}

	pending, err := n.Pending(10)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending toasts, want 1 (first unlock only)", len(pending))
	}
	if pending[0].Type != domain.NotifyAchievement {
		t.Errorf("type = %q, want achievement", pending[0].Type)
	}
}

func TestNotifier_MarkShown(t *testing.T) {
	n := engagement.NewNotifierWithPolicy(testDB(t), time.UTC, noQuietPolicy(10))
	at := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	id, err := n.Notify(domain.Notification{Type: domain.NotifyStreak, Title: "t", Body: "b", CreatedAt: at})
	if err != nil || id == 0 {
		t.Fatalf("Notify: id=%d err=%v", id, err)
	}

	if err := n.MarkShown(id); err != nil {
		t.Fatalf("MarkShown: %v", err)
	}
	pending, err := n.Pending(10)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("shown notification still pending: %+v", pending)
	}
}
