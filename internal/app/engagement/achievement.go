package engagement

import (
	"time"

	"github.com/kintsugi-journal/kintsugi/internal/domain"
)

// CheckAndUnlock evaluates the full catalog against the given stats and
// appends any newly earned achievements to state.Achievements, in catalog
// declaration order. Already-unlocked ids are filtered first, so calling
// twice with unchanged state returns nothing the second time and the
// unlocked set only ever grows.
func CheckAndUnlock(state *domain.EngagementState, stats domain.UserStats, now time.Time) []domain.AchievementDef {
	var newlyUnlocked []domain.AchievementDef

	for _, def := range Catalog() {
		if state.HasAchievement(def.ID) {
			continue
		}
		if def.Predicate != nil && def.Predicate(stats) {
			state.Achievements = append(state.Achievements, domain.UnlockedAchievement{
				ID:         def.ID,
				UnlockedAt: now,
			})
			newlyUnlocked = append(newlyUnlocked, def)
		}
	}

	return newlyUnlocked
}

// ProgressAll reports one row per catalog definition, in catalog order.
// Unlocked achievements carry their unlock instant and a full bar; locked
// ones carry (progress, target) clamped so progress never exceeds target.
func ProgressAll(state domain.EngagementState, stats domain.UserStats) []domain.AchievementProgress {
	unlockedAt := make(map[string]time.Time, len(state.Achievements))
	for _, a := range state.Achievements {
		unlockedAt[a.ID] = a.UnlockedAt
	}

	catalog := Catalog()
	rows := make([]domain.AchievementProgress, 0, len(catalog))
	for _, def := range catalog {
		row := domain.AchievementProgress{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
			Target:      def.Target,
		}

		if at, ok := unlockedAt[def.ID]; ok {
			t := at
			row.Unlocked = true
			row.UnlockedAt = &t
			row.Progress = def.Target
		} else {
			if def.Progress != nil {
				row.Progress = def.Progress(stats)
			}
			if row.Progress > def.Target {
				row.Progress = def.Target
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// LookupAchievement returns the catalog definition for an id.
func LookupAchievement(id string) (domain.AchievementDef, error) {
	for _, def := range Catalog() {
		if def.ID == id {
			return def, nil
		}
	}
	return domain.AchievementDef{}, domain.ErrUnknownAchievement
}
