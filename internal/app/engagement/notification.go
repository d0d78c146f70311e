package engagement

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/domain"
	"github.com/kintsugi-journal/kintsugi/internal/infra/sqlite"
)

// Notifier queues achievement and streak toasts for the presentation
// layer. Policy: a daily cap and quiet hours — a self-reflection app must
// not nag its user at midnight.
type Notifier struct {
	db     *sqlite.DB
	policy domain.NotificationPolicy
	loc    *time.Location
}

// NewNotifier creates a notifier with the default policy.
func NewNotifier(db *sqlite.DB, loc *time.Location) *Notifier {
	return NewNotifierWithPolicy(db, loc, domain.DefaultNotificationPolicy())
}

// NewNotifierWithPolicy creates a notifier with a custom policy.
func NewNotifierWithPolicy(db *sqlite.DB, loc *time.Location, policy domain.NotificationPolicy) *Notifier {
	return &Notifier{db: db, policy: policy, loc: loc}
}

// Notify queues a notification if policy allows it.
// Returns the notification ID (0 if suppressed by policy) and any error.
func (n *Notifier) Notify(notif domain.Notification) (int64, error) {
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}

	startOfDay := dayOf(notif.CreatedAt, n.loc)
	todayCount, err := n.db.NotificationCountSince(startOfDay)
	if err != nil {
		return 0, fmt.Errorf("count today: %w", err)
	}
	if todayCount >= n.policy.MaxPerDay {
		return 0, nil // Suppressed — daily limit reached
	}

	if n.isQuietHour(notif.CreatedAt) {
		return 0, nil // Suppressed — quiet hours
	}

	notif.Shown = false
	id, err := n.db.InsertNotification(notif)
	if err != nil {
		return 0, fmt.Errorf("insert notification: %w", err)
	}
	return id, nil
}

// NotifyUnlocks queues a toast for the first achievement unlocked in an
// evaluation pass. Catalog order decides which one the user sees.
func (n *Notifier) NotifyUnlocks(unlocked []domain.AchievementDef, at time.Time) error {
	if len(unlocked) == 0 {
		return nil
	}
	first := unlocked[0]
	_, err := n.Notify(domain.Notification{
		Type:      domain.NotifyAchievement,
		Title:     "Achievement unlocked!",
		Body:      fmt.Sprintf("%s %s — %s", first.Icon, first.Title, first.Description),
		CreatedAt: at,
	})
	return err
}

// Pending returns unshown notifications.
func (n *Notifier) Pending(limit int) ([]domain.Notification, error) {
	return n.db.ListPendingNotifications(limit)
}

// MarkShown marks a notification as shown.
func (n *Notifier) MarkShown(id int64) error {
	return n.db.MarkNotificationShown(id)
}

// Policy returns the active notification policy.
func (n *Notifier) Policy() domain.NotificationPolicy {
	return n.policy
}

// isQuietHour returns true if the given time falls within quiet hours.
func (n *Notifier) isQuietHour(t time.Time) bool {
	startHour, startMin := parseHHMM(n.policy.QuietStart)
	endHour, endMin := parseHHMM(n.policy.QuietEnd)

	local := t.In(n.loc)
	timeMinutes := local.Hour()*60 + local.Minute()
	startMinutes := startHour*60 + startMin
	endMinutes := endHour*60 + endMin

	if startMinutes > endMinutes {
		// Wraps midnight: e.g., 22:00 – 08:00
		return timeMinutes >= startMinutes || timeMinutes < endMinutes
	}
	return timeMinutes >= startMinutes && timeMinutes < endMinutes
}

// parseHHMM parses "HH:MM" into hour and minute.
func parseHHMM(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}
