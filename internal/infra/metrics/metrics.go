// Package metrics provides Prometheus metrics for Kintsugi.
// Counters for journal activity and the engagement engine, exposed at
// /metrics when telemetry is enabled in config.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Journal ────────────────────────────────────────────────────────────────

// EntriesRecorded counts accepted journal entries.
var EntriesRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kintsugi",
	Name:      "entries_recorded_total",
	Help:      "Total journal entries recorded.",
})

// EntriesRejected counts entries rejected by validation, by reason.
var EntriesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kintsugi",
	Name:      "entries_rejected_total",
	Help:      "Total journal entries rejected by validation.",
}, []string{"reason"})

// ─── Engagement ─────────────────────────────────────────────────────────────

// Visits counts recorded app visits.
var Visits = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kintsugi",
	Name:      "visits_total",
	Help:      "Total recorded visits.",
})

// AffirmationViews counts affirmation views.
var AffirmationViews = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kintsugi",
	Name:      "affirmation_views_total",
	Help:      "Total affirmation views.",
})

// InsightViews counts insight views.
var InsightViews = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "kintsugi",
	Name:      "insight_views_total",
	Help:      "Total insight views.",
})

// AchievementsUnlocked counts unlocks, by category.
var AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "kintsugi",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
}, []string{"category"})

// CurrentStreakDays tracks the entry streak after the latest recomputation.
var CurrentStreakDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "kintsugi",
	Name:      "current_streak_days",
	Help:      "Current consecutive-day journaling streak.",
})
